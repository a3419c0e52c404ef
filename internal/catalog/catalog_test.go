package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aslerrors "asl/pkg/errors"
)

func TestIDsAreFixedAndSorted(t *testing.T) {
	assert.Equal(t, []string{"alpine", "arch", "debian", "fedora", "ubuntu"}, IDs())
}

func TestLookupKnown(t *testing.T) {
	d, err := Lookup("ubuntu")
	require.NoError(t, err)
	assert.Equal(t, "Ubuntu", d.Name)
	assert.Equal(t, "docker.io/library/ubuntu:latest", d.Image)
	assert.Equal(t, "/bin/bash", d.Shell)

	// alpine has no bash in the base image
	d, err = Lookup("alpine")
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh", d.Shell)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("sles")
	assert.ErrorIs(t, err, aslerrors.ErrUnknownDistro)
}

func TestTaggedName(t *testing.T) {
	assert.Equal(t, "asl-debian:latest", TaggedName("debian"))
}
