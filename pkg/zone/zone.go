// Package zone defines the stages of the simulated data lake: which bucket
// each zone writes to, how many records a run produces, the canonical
// serialization format and the object key template.
package zone

import (
	"fmt"
	"strconv"
	"strings"
)

// Zone identifies one generator target
type Zone string

const (
	// LandingSAP is raw nested JSON from the SAP source
	LandingSAP Zone = "landing-sap"
	// LandingCloudX is raw flat Parquet from the Cloud X source
	LandingCloudX Zone = "landing-cloudx"
	// Bronze is minimally cleaned CSV from Protheus
	Bronze Zone = "bronze"
	// Silver is enriched, grouped JSON
	Silver Zone = "silver"
	// Gold is analytics-ready, bucketed Parquet
	Gold Zone = "gold"
)

// Format is the canonical serialization of a zone
type Format string

const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatAvro    Format = "avro"
)

// Bucket names of the lake
const (
	LandingBucket = "landing-zone"
	BronzeBucket  = "bronze-zone"
	SilverBucket  = "silver-zone"
	GoldBucket    = "gold-zone"
)

// Buckets is the fixed bucket set, in provisioning order
var Buckets = []string{LandingBucket, BronzeBucket, SilverBucket, GoldBucket}

// Range is an inclusive record-count range
type Range struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return strconv.Itoa(r.Min) + "-" + strconv.Itoa(r.Max)
}

// Definition describes everything static about a zone
type Definition struct {
	Zone        Zone
	Bucket      string
	Format      Format
	Count       Range
	KeyTemplate string
	Description string
}

// Key renders the key template for a run started at ts (Unix seconds)
func (d Definition) Key(ts int64) string {
	return strings.ReplaceAll(d.KeyTemplate, "{ts}", strconv.FormatInt(ts, 10))
}

var definitions = []Definition{
	{
		Zone:        LandingSAP,
		Bucket:      LandingBucket,
		Format:      FormatJSON,
		Count:       Range{Min: 1000, Max: 10000},
		KeyTemplate: "dataway/sap/clients/clients_data_{ts}.json",
		Description: "raw SAP customers, nested address/company/preferences",
	},
	{
		Zone:        LandingCloudX,
		Bucket:      LandingBucket,
		Format:      FormatParquet,
		Count:       Range{Min: 1000, Max: 10000},
		KeyTemplate: "dataway/cloud_x/clients/clients_data_{ts}.parquet",
		Description: "raw Cloud X customers with credit and purchase fields",
	},
	{
		Zone:        Bronze,
		Bucket:      BronzeBucket,
		Format:      FormatCSV,
		Count:       Range{Min: 2000, Max: 8000},
		KeyTemplate: "processed/protheus/clients_bronze_{ts}.csv",
		Description: "flat, minimally cleaned Protheus customers",
	},
	{
		Zone:        Silver,
		Bucket:      SilverBucket,
		Format:      FormatJSON,
		Count:       Range{Min: 1500, Max: 6000},
		KeyTemplate: "enriched/sap/clients_silver_{ts}.json",
		Description: "enriched SAP customers grouped by subject",
	},
	{
		Zone:        Gold,
		Bucket:      GoldBucket,
		Format:      FormatParquet,
		Count:       Range{Min: 1000, Max: 4000},
		KeyTemplate: "analytics/cloud_x/clients_gold_{ts}.parquet",
		Description: "analytics-ready customers with derived brackets",
	},
}

// All returns every zone definition in run order
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition of z
func Lookup(z Zone) (Definition, error) {
	for _, d := range definitions {
		if d.Zone == z {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown zone %q", string(z))
}

// Parse converts a CLI argument into a Zone
func Parse(s string) (Zone, error) {
	d, err := Lookup(Zone(strings.ToLower(strings.TrimSpace(s))))
	if err != nil {
		return "", err
	}
	return d.Zone, nil
}

// ParseFormat converts a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV, FormatParquet, FormatAvro:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}
