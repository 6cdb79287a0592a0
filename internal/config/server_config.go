package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"github/chapool/go-rixsdk/internal/wallet/abi"
	"github/chapool/go-rixsdk/internal/wallet/rpc"
	"github/chapool/go-rixsdk/internal/wallet/transaction"
)

const (
	envPrefix    = "RIX"
	localEnvFile = ".env.local"
)

type Logger struct {
	Level              zerolog.Level `json:"level"`
	PrettyPrintConsole bool          `json:"prettyPrintConsole"`
}

type RPC struct {
	URLs    []string      `json:"urls"`
	Timeout time.Duration `json:"timeout"`
}

type ABI struct {
	CacheSize int `json:"cacheSize"`
}

type Signer struct {
	// PrivateKeys are formatted private keys, never printed.
	PrivateKeys []string `json:"-"`
}

type Server struct {
	Logger      Logger             `json:"logger"`
	RPC         RPC                `json:"rpc"`
	Transaction transaction.Config `json:"transaction"`
	ABI         ABI                `json:"abi"`
	Signer      Signer             `json:"signer"`
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults. A .env.local file in the working directory is loaded first.
func DefaultServiceConfigFromEnv() Server {
	// An optional local env file overrides nothing that is already set.
	if err := gotenv.Load(localEnvFile); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", localEnvFile).Msg("Failed to load local env file")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logger.level", zerolog.DebugLevel.String())
	v.SetDefault("logger.pretty_print_console", false)
	v.SetDefault("rpc.urls", "http://127.0.0.1:8888")
	v.SetDefault("rpc.timeout", rpc.DefaultTimeout)
	v.SetDefault("transaction.expires_seconds", transaction.DefaultExpiresSeconds)
	v.SetDefault("transaction.blocks_behind", transaction.DefaultBlocksBehind)
	v.SetDefault("abi.cache_size", abi.DefaultCacheSize)
	v.SetDefault("signer.private_keys", "")

	level, err := zerolog.ParseLevel(v.GetString("logger.level"))
	if err != nil {
		log.Warn().Err(err).Msg("Invalid log level, falling back to debug")
		level = zerolog.DebugLevel
	}

	return Server{
		Logger: Logger{
			Level:              level,
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
		RPC: RPC{
			URLs:    splitList(v.GetString("rpc.urls")),
			Timeout: v.GetDuration("rpc.timeout"),
		},
		Transaction: transaction.Config{
			ExpiresSeconds: v.GetInt("transaction.expires_seconds"),
			BlocksBehind:   v.GetInt("transaction.blocks_behind"),
		},
		ABI: ABI{
			CacheSize: v.GetInt("abi.cache_size"),
		},
		Signer: Signer{
			PrivateKeys: splitList(v.GetString("signer.private_keys")),
		},
	}
}

// splitList splits a comma separated env value, dropping empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
