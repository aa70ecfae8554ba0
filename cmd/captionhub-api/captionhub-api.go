/*
Copyright 2024 The CaptionHub Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// captionhub-api
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/captionhub/internal/captionhub-api/global"
	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	routers "github.com/captionhub/pkg/captionhub-api/app/router"
	"github.com/captionhub/pkg/captionhub-api/conf"
	"github.com/captionhub/pkg/captionhub-api/napp"
	v "github.com/captionhub/pkg/captionhub-api/pkg/version"
)

var (
	cfg     = pflag.StringP("config", "c", "", "config file path.")
	version = pflag.BoolP("version", "v", false, "show version info.")
)

// @title CaptionHub api
// @version 1.0
// @description Image caption and analysis server api

func main() {
	pflag.Parse()
	if *version {
		ver := v.Get()
		marshaled, err := json.MarshalIndent(&ver, "", "  ")
		if err != nil {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(marshaled))
		return
	}

	// init config
	if err := conf.Init(*cfg); err != nil {
		panic(err)
	}

	// init app
	napp.App = napp.New(conf.Conf)

	// Initial the Gin engine.
	router := napp.App.Router

	// Health Check
	router.GET("/health", api.HealthCheck)
	// metrics prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API Routes.
	routers.Load(router)

	// init service
	service.Init()

	fmt.Printf("current run version %s, tag %s, branch %s \n", global.CommitId, global.Version, global.Branch)

	// start server
	napp.App.Run()
}
