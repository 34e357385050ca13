package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// FinanceConfig controls how financial reports are derived and displayed.
type FinanceConfig struct {
	// CurrencyCode and CurrencySymbol drive display formatting only;
	// amounts are stored as plain numbers in a single currency.
	CurrencyCode   string `mapstructure:"currencyCode"`
	CurrencySymbol string `mapstructure:"currencySymbol"`

	// Timezone is the shop's local time zone used for month bucketing.
	Timezone string `mapstructure:"timezone"`

	// TrackPayments selects the net-profit formula. When true, payments
	// recorded after the deposit count toward collected revenue
	// (netProfit = deposits + payments - expenses). When false only
	// deposits count (netProfit = deposits - expenses).
	TrackPayments bool `mapstructure:"trackPayments"`

	// MonthWindow is the number of trailing calendar months in the
	// monthly series, current month included.
	MonthWindow int `mapstructure:"monthWindow"`
}

func DefaultFinanceConfig() FinanceConfig {
	return FinanceConfig{
		CurrencyCode:   "AED",
		CurrencySymbol: "AED",
		Timezone:       "UTC",
		TrackPayments:  true,
		MonthWindow:    6,
	}
}

// Location resolves the configured time zone, falling back to UTC.
func (c FinanceConfig) Location() *time.Location {
	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}

type FinanceConfigHolder struct {
	current atomic.Value // holds FinanceConfig
}

func NewFinanceConfigHolder() (*FinanceConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("finance")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/atelier/config")
	v.AddConfigPath("/etc/atelier")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ATELIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultFinanceConfig()
	v.SetDefault("finance.currencyCode", defaults.CurrencyCode)
	v.SetDefault("finance.currencySymbol", defaults.CurrencySymbol)
	v.SetDefault("finance.timezone", defaults.Timezone)
	v.SetDefault("finance.trackPayments", defaults.TrackPayments)
	v.SetDefault("finance.monthWindow", defaults.MonthWindow)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg FinanceConfig
	if err := v.UnmarshalKey("finance", &cfg); err != nil {
		return nil, err
	}
	if err := validateFinanceConfig(cfg); err != nil {
		return nil, err
	}

	holder := &FinanceConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated FinanceConfig
		if err := v.UnmarshalKey("finance", &updated); err != nil {
			log.Printf("[finance-config] reload failed: %v", err)
			return
		}
		if err := validateFinanceConfig(updated); err != nil {
			log.Printf("[finance-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[finance-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *FinanceConfigHolder) Get() FinanceConfig {
	return h.current.Load().(FinanceConfig)
}

// NewStaticFinanceConfigHolder wraps a fixed config, used by tests.
func NewStaticFinanceConfigHolder(cfg FinanceConfig) *FinanceConfigHolder {
	holder := &FinanceConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func validateFinanceConfig(cfg FinanceConfig) error {
	if strings.TrimSpace(cfg.CurrencySymbol) == "" {
		return errors.New("finance.currencySymbol cannot be empty")
	}
	if cfg.MonthWindow <= 0 {
		return errors.New("finance.monthWindow must be positive")
	}
	if _, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone)); err != nil {
		return errors.New("finance.timezone is not a valid location")
	}
	return nil
}
