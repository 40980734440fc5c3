package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	HttpsEnabled      bool   `usage:"serve HTTPS"`
	HttpsSelfsigned   bool   `usage:"use a self-signed certificate for HTTPS"`
	WindowName        string `usage:"name of the device memory window"`
	WindowBase        uint64 `usage:"base address of the window, must be 8-byte aligned"`
	WindowTotal       uint64 `usage:"size of the window in bytes"`
	ApiKey            string `usage:"api key, leave empty to disable authentication"`
	ApiSecret         string `usage:"api secret"`
	EnableCompression bool   `usage:"gzip responses"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}
