// Package config provides configuration management for trainctl.
//
// Configuration is loaded from multiple sources and merged in order, later
// sources overriding earlier ones:
//
//  1. Default configuration (compiled in, see GetDefaultConfig)
//  2. User configuration (~/.config/trainctl/config.yaml)
//  3. Project configuration (./.trainctl/config.yaml)
//
// Scalar fields override only when set. A non-empty plan list replaces the
// inherited list.
//
// # Configuration Structure
//
//	provider:
//	  endpoint: "https://api.sncf.com/v1/coverage/sncf/journeys"
//	  count: 15
//	  timeout: 15s
//
//	binding:
//	  mode: "process"          # or "local"
//	  command: ["trainctl", "provider"]
//	  pingInterval: 30s
//
//	plans:
//	  - from: "admin:fr:35184"
//	    fromName: "Montauban"
//	    to: "admin:fr:35238"
//	    toName: "Rennes"
//
//	tile:
//	  label: "Trains"
//	  animate: true
//
// # API Token
//
// The provider token is never required in a file. TRAINCTL_API_TOKEN from the
// environment wins, then the same key in ./.env, then provider.token.
package config
