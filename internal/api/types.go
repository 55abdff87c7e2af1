package api

import "glance/pkg/types"

// FolderListing is the response of GET /api/folders[/<path>].
type FolderListing struct {
	Folders []types.FolderEntry `json:"folders"`
	Files   []types.MediaItem   `json:"files"`
}

// TrashListing is the response of GET /api/trash_content.
type TrashListing struct {
	Files []types.MediaItem `json:"files"`
	Count int               `json:"count"`
}

// actionResponse is the body shared by every mutating endpoint:
// {message} on success, {error} on failure.
type actionResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type pathRequest struct {
	Path string `json:"path"`
}

type folderPathRequest struct {
	Path []string `json:"path"`
}

type createFolderRequest struct {
	ParentPath []string `json:"parent_path"`
	FolderName string   `json:"folder_name"`
}

type deleteMultipleRequest struct {
	Paths       []string `json:"paths"`
	IsPermanent bool     `json:"is_permanent"`
}

type restoreMultipleRequest struct {
	Paths []string `json:"paths"`
}
