package easel

// NewForExecutable is New with the executable path replaced by exe, so
// tests can place resource folders relative to a simulated binary.
func NewForExecutable(cfg Config, backend Backend, exe string) (*Graphics, error) {
	env := osLocatorEnv()
	env.executable = func() (string, error) { return exe, nil }
	return newGraphics(cfg, backend, env)
}
