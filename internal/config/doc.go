// Package config provides configuration parsing for vattr.
//
// The configuration is stored in vattr.json. This package handles loading,
// saving, and validating it; command-line flags override loaded values.
//
// # Configuration File Structure
//
//	{
//	  "render": {
//	    "pretty": true,
//	    "indent": "  ",
//	    "hydrate": true
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "metricsPath": "/metrics",
//	    "livePath": "/live",
//	    "shutdownTimeout": "10s"
//	  },
//	  "metrics": { "namespace": "vattr" },
//	  "protocol": { "maxFrameSize": 1048576, "maxNodeDepth": 256 },
//	  "publish": { "target": "s3://my-bucket/pages", "region": "us-east-1" },
//	  "log": { "level": "info", "format": "text" }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
