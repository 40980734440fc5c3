package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/ddrmem/bootstrap"
	"github.com/fulldump/ddrmem/configuration"
)

var VERSION = "dev"

var banner = `
     _     _                               
  __| | __| |_ __ _ __ ___   ___ _ __ ___  
 / _' |/ _' | '__| '_ ' _ \ / _ \ '_ ' _ \ 
| (_| | (_| | |  | | | | | |  __/ | | | | |
 \__,_|\__,_|_|  |_| |_| |_|\___|_| |_| |_|
                       version ` + VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	bootstrap.VERSION = VERSION
	start, _ := bootstrap.Bootstrap(c)
	start()
}
