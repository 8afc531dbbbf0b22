package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	MongoURI     string
	MongoDB      string
	EventsDB     string // shared by the audit writer and the admin activity feed
	RedisAddr    string
	KafkaBrokers []string
	ServiceName  string

	// base URLs of the peer services this one notifies or polls
	RetailerURL     string
	SupplierURL     string
	ManufacturerURL string
	DistributorURL  string
}

// Load reads the environment for one service. The service name doubles as the
// default Mongo database name suffix and the event producer id.
func Load(service, defaultAddr string) Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", defaultAddr),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "supplychain_"+service),
		EventsDB:        getenv("EVENTS_DB", "supplychain_audit"),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		KafkaBrokers:    splitCSV(getenv("KAFKA_BROKERS", "")),
		ServiceName:     getenv("SERVICE_NAME", service),
		RetailerURL:     getenv("RETAILER_URL", "http://localhost:7001"),
		SupplierURL:     getenv("SUPPLIER_URL", "http://localhost:7002"),
		ManufacturerURL: getenv("MANUFACTURER_URL", "http://localhost:7003"),
		DistributorURL:  getenv("DISTRIBUTOR_URL", "http://localhost:7004"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
