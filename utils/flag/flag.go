/*
flag Package set up cli flags shared across binaries

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic.
	Binaries must call flag.Parse() from main, parsing in init breaks go test.
	For binary dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	WebServer   = "yatube_web"
	AdminScript = "yatube_admin"
)

var (
	IsDevelopment  bool
	ServiceName    string
	AppSettingPath string
	Addr           string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", WebServer, "'yatube_web' or 'yatube_admin'")
	flag.StringVar(&AppSettingPath, "app_setting_path", "", "path to yatube app setting yaml, defaults are used when empty")
	flag.StringVar(&Addr, "addr", ":8080", "address the web server listens on")
}

// Parse parses command line flags, safe to call more than once.
func Parse() {
	if !flag.Parsed() {
		flag.Parse()
	}
}
