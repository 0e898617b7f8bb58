// Package config loads medallion's configuration.
//
// Configuration comes from, in increasing precedence: built-in defaults, a
// YAML file, and MEDALLION_* environment variables (nested keys joined with
// an underscore, e.g. MEDALLION_STORAGE_ENDPOINT). Inside the YAML file,
// ${VAR_NAME} placeholders are replaced with environment values before
// parsing, so secrets can stay out of the file:
//
//	storage:
//	  backend: s3
//	  endpoint: http://localhost:9000
//	  access_key: ${MINIO_ROOT_USER}
//	  secret_key: ${MINIO_ROOT_PASSWORD}
//	  use_path_style: true
//	generation:
//	  locale: pt_BR
//	  seed: 0
//	output:
//	  compression: none
//
// # Usage
//
//	cfg, err := config.Load("medallion.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// An empty path skips the file and uses defaults plus environment. Load
// always validates; Save writes a configuration back as YAML, which is how
// `medallion config init` produces its starter file.
package config
