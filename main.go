package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/swift-aid/admin-console/config"
	"github.com/swift-aid/admin-console/proxy"
)

func main() {
	a := proxy.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	zap.S().Infow("admin-console dev proxy is up and running",
		"port", a.Config.ProxyPort,
		"upstream", a.Config.APIBaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.ProxyPort), a.Router))
}
