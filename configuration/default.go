package configuration

import "github.com/fulldump/ddrmem/session"

func Default() *Configuration {
	return &Configuration{
		HttpAddr:    "127.0.0.1:8080",
		WindowName:  "ddr",
		WindowBase:  0x10000000,
		WindowTotal: 256 * 1024 * 1024,
		ShowBanner:  true,
	}
}

// SessionConfig returns the windows a session opens on start.
func (c *Configuration) SessionConfig() *session.Config {

	if c.WindowName == "" {
		return &session.Config{}
	}

	return &session.Config{
		Windows: []session.WindowConfig{
			{
				Name:  c.WindowName,
				Base:  c.WindowBase,
				Total: c.WindowTotal,
			},
		},
	}
}
