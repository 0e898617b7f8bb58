// Package medallion generates synthetic Brazilian customer data and lands it
// in the buckets of a medallion-architecture data lake.
//
// Each zone of the lake has its own record shape, file format and bucket:
//   - landing-sap: nested SAP records as JSON in landing-zone
//   - landing-cloudx: flat Cloud X records as Parquet in landing-zone
//   - bronze: flat Protheus records as CSV in bronze-zone
//   - silver: records grouped by subject as JSON in silver-zone
//   - gold: analytics records with derived brackets as Parquet in gold-zone
//
// A run draws a record count from the zone's range, generates the whole set,
// serializes it into one payload and uploads it under a key stamped with the
// run's Unix second. A run either writes one complete object or nothing.
//
// # Quick Start
//
//	medallion config init
//	medallion buckets
//	medallion run --zone gold
//	medallion run-all
//
// Local output without a store:
//
//	medallion generate --zone gold --format avro --count 500 --out ./out
//	medallion inspect --file ./out/clients_gold_1710498600.avro
//
// # Key Packages
//
//   - pkg/zone: zone catalogue (bucket, format, count range, key template)
//   - pkg/fake: seeded pt_BR identity provider
//   - pkg/generator: per-zone record factories
//   - pkg/formats: JSON, CSV, Parquet and Avro serializers and readers
//   - pkg/storage: S3/MinIO, GCS, local file and in-memory stores
//   - internal/pipeline: provisioning and run orchestration
//
// # Configuration
//
// Configuration is read from an optional YAML file and MEDALLION_* environment
// variables, for example MEDALLION_STORAGE_BACKEND=file and
// MEDALLION_STORAGE_ROOT=./lake. A .env file in the working directory is
// loaded first.
package medallion
