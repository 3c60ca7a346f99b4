package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Title string
	Font  string
	TPS   int
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{Title: "pong", TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.StringVar(&c.Font, "font", c.Font, "path to a TTF font for the score (bundled Go Regular when empty)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (ebiten backend)")
}
