// Package assets embeds the stock combat data files so a simulation can be
// built without any files on disk.
package assets

import (
	"embed"

	"github.com/automoto/brawlcore/config"
)

//go:embed data/*.yaml
var dataFS embed.FS

// CollisionMatrix parses the embedded stock collision rules.
func CollisionMatrix() (*config.CollisionMatrix, error) {
	data, err := dataFS.ReadFile("data/collision_matrix.yaml")
	if err != nil {
		return nil, err
	}
	return config.ParseCollisionMatrix(data)
}

// FrameLibrary parses the embedded sample character frame data.
func FrameLibrary() (config.FrameLibrary, error) {
	data, err := dataFS.ReadFile("data/characters.yaml")
	if err != nil {
		return nil, err
	}
	return config.ParseFrameLibrary(data)
}
