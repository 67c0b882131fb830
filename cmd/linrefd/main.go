package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/pborman/getopt/v2"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/equinor/linref-api/api/handlers"
	"github.com/equinor/linref-api/api/middleware"
	"github.com/equinor/linref-api/internal/cache"
	_ "github.com/equinor/linref-api/docs"
	"github.com/equinor/linref-api/internal/metrics"
	"github.com/equinor/linref-api/internal/storage"
)

type opts struct {
	storageAccounts   string
	port              uint32
	cacheSize         uint64
	metrics           bool
	metricsPort       uint32
	trustedProxies    []string
	blockedIPs        []string
	blockedUserAgents []string
}

func parseAsUint32(fallback uint32, value string) uint32 {
	if len(value) == 0 {
		return fallback
	}
	out, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		panic(err)
	}

	return uint32(out)
}

func parseAsUint64(fallback uint64, value string) uint64 {
	if len(value) == 0 {
		return fallback
	}
	out, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		panic(err)
	}

	return out
}

func parseAsString(fallback string, value string) string {
	if len(value) == 0 {
		return fallback
	}
	return value
}

func parseAsBool(fallback bool, value string) bool {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return v
}

func parseAsListOfStrings(fallback []string, value string) []string {
	if len(value) == 0 {
		return fallback
	}

	items := strings.Split(value, ",")

	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}

func parseopts() opts {
	help := getopt.BoolLong("help", 0, "print this help text")

	opts := opts{
		storageAccounts:   parseAsString("", os.Getenv("LINREF_API_STORAGE_ACCOUNTS")),
		port:              parseAsUint32(8080, os.Getenv("LINREF_API_PORT")),
		cacheSize:         parseAsUint64(0, os.Getenv("LINREF_API_CACHE_SIZE")),
		metrics:           parseAsBool(false, os.Getenv("LINREF_API_METRICS")),
		metricsPort:       parseAsUint32(8081, os.Getenv("LINREF_API_METRICS_PORT")),
		trustedProxies:    parseAsListOfStrings(nil, os.Getenv("LINREF_API_TRUSTED_PROXIES")),
		blockedIPs:        parseAsListOfStrings(nil, os.Getenv("LINREF_API_BLOCKED_IPS")),
		blockedUserAgents: parseAsListOfStrings(nil, os.Getenv("LINREF_API_BLOCKED_USER_AGENTS")),
	}

	getopt.FlagLong(
		&opts.storageAccounts,
		"storage-accounts",
		0,
		"Comma-separated list of storage accounts that should be accepted for\n"+
			"geometryUrl. Example: 'https://<account1>.blob.core.windows.net'\n"+
			"Can also be set by environment variable 'LINREF_API_STORAGE_ACCOUNTS'",
		"string",
	)

	getopt.FlagLong(
		&opts.port,
		"port",
		0,
		"Port to start server on. Defaults to 8080.\n"+
			"Can also be set by environment variable 'LINREF_API_PORT'",
		"int",
	)

	getopt.FlagLong(
		&opts.cacheSize,
		"cache-size",
		0,
		"Max size of the response cache. In megabytes. A value of zero effectively\n"+
			"disables caching. Defaults to 0.\n"+
			"Can also be set by environment variable 'LINREF_API_CACHE_SIZE'",
		"int",
	)

	getopt.FlagLong(
		&opts.metrics,
		"metrics",
		0,
		"Turn on server metrics. Metrics are posted to /metrics using the\n"+
			"prometheus data model. Off by default.\n"+
			"Can also be set by environment variable 'LINREF_API_METRICS'",
	)

	getopt.FlagLong(
		&opts.metricsPort,
		"metrics-port",
		0,
		"Port to host the /metrics endpoint on. Metrics are always hosted on a\n"+
			"different port than the server itself. Defaults to 8081.\n"+
			"Ignored if metrics are not turned on. (see --metrics)\n"+
			"Can also be set by environment variable 'LINREF_API_METRICS_PORT'",
		"int",
	)

	getopt.FlagLong(
		&opts.trustedProxies,
		"trusted-proxies",
		0,
		"Comma-separated list of proxy network origins (IPv4 addresses, IPv4 CIDRs,\n"+
			"IPv6 addresses or IPv6 CIDRs) from which to trust request headers that\n"+
			"contain an alternative client IP. Impacts which IP is written to the log.\n"+
			"Can also be set by environment variable 'LINREF_API_TRUSTED_PROXIES'",
		"string",
	)

	getopt.FlagLong(
		&opts.blockedIPs,
		"blocked-ips",
		0,
		"Comma-separated list of ips which shouldn't be allowed to access the application.\n"+
			"Can also be set by environment variable 'LINREF_API_BLOCKED_IPS'",
		"string",
	)

	getopt.FlagLong(
		&opts.blockedUserAgents,
		"blocked-user-agents",
		0,
		"Comma-separated list of user agents which shouldn't be allowed to access the application\n"+
			"Can also be set by environment variable 'LINREF_API_BLOCKED_USER_AGENTS'",
		"string",
	)

	getopt.Parse()
	if *help {
		getopt.Usage()
		os.Exit(0)
	}

	return opts
}

func setupApp(app *gin.Engine, endpoint *handlers.Endpoint, metric *metrics.Metrics, opts *opts) {
	app.Use(middleware.FormattedLogger())
	app.Use(gin.Recovery())
	app.Use(gzip.Gzip(gzip.BestSpeed))
	app.Use(middleware.RequestBlocker(opts.blockedIPs, opts.blockedUserAgents))

	kernel := app.Group("/")
	kernel.Use(middleware.ErrorHandler)

	if metric != nil {
		kernel.Use(metrics.NewGinMiddleware(metric))
	}

	app.GET("/", endpoint.Health)

	kernel.POST("locate", endpoint.LocatePost)
	kernel.POST("clip", endpoint.ClipPost)

	app.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// @title        linref API
// @version      0.0
// @description  Locates and clips measured linestrings by ordinate range.
// @contact.name Equinor ASA
// @contact.url  https://github.com/equinor/linref-api/issues
// @license.name GNU Affero General Public License
// @license.url  https://www.gnu.org/licenses/agpl-3.0.en.html
// @schemes      https
func main() {
	opts := parseopts()

	storageAccounts := strings.Split(opts.storageAccounts, ",")

	endpoint := handlers.Endpoint{
		MakeConnection: storage.MakeAzureConnection(storageAccounts),
		Loader:         storage.NewLoader(),
		Cache:          cache.NewCache(opts.cacheSize),
	}

	app := gin.New()

	err := app.SetTrustedProxies(opts.trustedProxies)
	if err != nil {
		panic(err)
	}

	var metric *metrics.Metrics
	if opts.metrics {
		metric = metrics.NewMetrics()
		/*
		 * Host the /metrics endpoint on a different app instance, so that it
		 * can live on a different port (and be kept private if desired), and
		 * so scrapers don't pollute the main server's request log.
		 */
		metricsApp := gin.New()

		err = metricsApp.SetTrustedProxies(opts.trustedProxies)
		if err != nil {
			panic(err)
		}

		metricsApp.Use(gin.Recovery())
		metricsApp.GET("metrics", metrics.NewGinHandler(metric))

		go func() {
			metricsApp.Run(fmt.Sprintf(":%d", opts.metricsPort))
		}()
	}

	setupApp(app, &endpoint, metric, &opts)
	app.Run(fmt.Sprintf(":%d", opts.port))
}
