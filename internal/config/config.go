package config

const (
	// AppDir is the per-application folder name used under every data
	// location probed by the resource resolver.
	AppDir = "backscrub"

	// Environment variables read once at startup.
	EnvSearchPath = "BACKSCRUB_PATH"
	EnvDataHome   = "XDG_DATA_HOME"
	EnvHome       = "HOME"

	// Asset categories.
	CategoryModels      = "models"
	CategoryBackgrounds = "backgrounds"

	// Default output locations for the batch commands.
	PathCompositeOut = "out/composite"
	PathYUYVOut      = "out/frame.yuyv"
)

// InstallPrefix is where `make install` puts shared assets. Override at
// build time with:
//
//	-ldflags "-X github.com/floe/go-backscrub/internal/config.InstallPrefix=/opt/backscrub"
var InstallPrefix = "/usr/local"
