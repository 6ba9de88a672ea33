package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

type Config struct {
	Port            int    `json:"port"`
	StateDir        string `json:"stateDir"`
	PollIntervalSec int    `json:"pollIntervalSec"`

	// upstream base urls, overridable for tests
	ReferenceRateURL string `json:"referenceRateUrl"`
	BinanceP2PURL    string `json:"binanceP2pUrl"`
	P2PArmyURL       string `json:"p2pArmyUrl"`
	CoinGeckoURL     string `json:"coinGeckoUrl"`
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSec) * time.Second
}

func defaultConfig() Config {
	return Config{
		Port:             3009,
		StateDir:         ".cambio",
		PollIntervalSec:  60,
		ReferenceRateURL: "https://www.datos.gov.co/resource/32sa-8pi3.json",
		BinanceP2PURL:    "https://p2p.binance.com/bapi/c2c/v2/friendly/c2c/adv/search",
		P2PArmyURL:       "https://p2p.army/v1/api/get_p2p_order_book",
		CoinGeckoURL:     "https://api.coingecko.com/api/v3",
	}
}

// LoadConfig reads the json config file, falling back to defaults when
// the file is missing. Unset fields keep their default value.
func LoadConfig() (*Config, error) {
	configFile := "cambio.json"
	if f := os.Getenv("CAMBIO_CONFIG"); f != "" {
		configFile = f
	}

	config := defaultConfig()

	f, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return &config, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	err = json.Unmarshal(f, &config)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", configFile, err)
	}

	return &config, nil
}
