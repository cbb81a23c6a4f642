package scene

// SceneBuilderOption defines a builder option for configuring a Scene.
type SceneBuilderOption func(*scene)

// WithControllerOptions forwards functional options to the scene's frame
// controller, for setting the initial lock, spin, and marker state.
//
// Parameters:
//   - options: the frame controller options to apply
//
// Returns:
//   - SceneBuilderOption: a builder option for configuring the scene's frame controller
func WithControllerOptions(options ...FrameControllerOption) SceneBuilderOption {
	return func(s *scene) {
		s.controllerOpts = append(s.controllerOpts, options...)
	}
}

// WithBuildWorkers sets the number of workers used for the parallel startup
// builds. Values below 1 are ignored. Defaults to NumCPU-1.
//
// Parameters:
//   - workers: the number of build workers
//
// Returns:
//   - SceneBuilderOption: a builder option for configuring the scene's build workers
func WithBuildWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		if workers > 0 {
			s.buildWorkers = workers
		}
	}
}

// WithCubeColor sets the base color of the cube.
//
// Parameters:
//   - color: RGBA color with components in [0, 1]
//
// Returns:
//   - SceneBuilderOption: a builder option for configuring the cube color
func WithCubeColor(color [4]float32) SceneBuilderOption {
	return func(s *scene) {
		s.cubeColor = color
	}
}

// WithGridColors sets the line colors of the reference grid.
//
// Parameters:
//   - lineColor: RGBA color of the regular grid lines
//   - axisColor: RGBA color of the two center axis lines
//
// Returns:
//   - SceneBuilderOption: a builder option for configuring the grid colors
func WithGridColors(lineColor, axisColor [4]float32) SceneBuilderOption {
	return func(s *scene) {
		s.gridColor = lineColor
		s.axisColor = axisColor
	}
}
