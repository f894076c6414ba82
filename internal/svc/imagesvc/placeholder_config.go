package imagesvc

// PlaceholderConfig holds configuration parameters for the placeholder
// artwork renderer.
type PlaceholderConfig struct {
	// Interpolator specifies the image scaling algorithm to use.
	// Valid values are: "nearestneighbor", "catmullrom", "bilinear", "approxbilinear"
	Interpolator string `env:"INTERPOLATOR" default:"catmullrom"`
}
