// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// winwifi lists and manages the wireless interfaces and saved WiFi profiles
// known to the Windows WLAN service.
//
// Synopsis:
//
//	winwifi interface list
//	winwifi profile list [--interface GUID | --pick]
//	winwifi profile get --name NAME [--interface GUID | --pick]
//	winwifi profile remove --name NAME [--interface GUID | --pick]
//	winwifi version
//
// Options common to every command:
//
//	--config FILE       read settings from FILE (yaml, json or toml)
//	--api-version 1|2   WLAN client version to negotiate (default 2)
//	-o, --output FMT    text, json or yaml
//	--log-level LEVEL   debug, info, warn or error
//
// Every option can also be set as WINWIFI_<KEY>, e.g. WINWIFI_API_VERSION=1.
package main

import (
	"log"

	"github.com/u-root/winwifi/pkg/wlan"
)

// Set with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

func main() {
	if err := newRootCommand(wlan.NativeAPI).Execute(); err != nil {
		log.Fatalf("winwifi: %v", err)
	}
}
