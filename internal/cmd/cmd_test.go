package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func promptWith(t *testing.T, answer string) bool {
	t.Helper()
	c := &cobra.Command{}
	c.SetIn(strings.NewReader(answer))
	c.SetOut(&bytes.Buffer{})
	return confirmPrompt(c, "Proceed?")
}

func TestConfirmPrompt(t *testing.T) {
	assert.True(t, promptWith(t, "y\n"))
	assert.True(t, promptWith(t, "YES\n"))
	assert.False(t, promptWith(t, "n\n"))
	assert.False(t, promptWith(t, "\n"), "default is no")
	assert.False(t, promptWith(t, ""), "closed stdin aborts")
}

func TestConfirmPromptAssumeYes(t *testing.T) {
	assumeYes = true
	defer func() { assumeYes = false }()
	assert.True(t, promptWith(t, "n\n"))
}

func TestMkdirRejectsBadPaths(t *testing.T) {
	err := mkdirCmd.RunE(mkdirCmd, []string{""})
	assert.ErrorContains(t, err, "folder name cannot be empty")

	err = mkdirCmd.RunE(mkdirCmd, []string{"_Trash/sub"})
	assert.Error(t, err, "trash cannot be nested")
}

func TestUploadRejectsTrashDest(t *testing.T) {
	uploadDest = "_Trash"
	defer func() { uploadDest = "" }()
	err := uploadCmd.RunE(uploadCmd, []string{"x.jpg"})
	assert.ErrorContains(t, err, "cannot upload into the trash")
}
