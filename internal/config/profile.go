package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// BusinessProfile is the stationery stamped onto every invoice: the header
// block, the signature block, totals labels, tax rate, and the text column
// width. It ships with defaults and can be overridden by invoicedesk.yml.
type BusinessProfile struct {
	HeaderLines    []string `mapstructure:"headerLines"`
	SignatureLines []string `mapstructure:"signatureLines"`
	SubtotalLabel  string   `mapstructure:"subtotalLabel"`
	TaxLabel       string   `mapstructure:"taxLabel"`
	TotalLabel     string   `mapstructure:"totalLabel"`
	TaxRate        float64  `mapstructure:"taxRate"`
	ColumnWidth    int      `mapstructure:"columnWidth"`
}

func DefaultBusinessProfile() BusinessProfile {
	return BusinessProfile{
		HeaderLines: []string{
			"ORIGINAL PC DOCTOR",
			"Onsite Servicing Brisbane and Surrounds" + strings.Repeat(" ", 22) + "ABN: 63159610829",
			"Phone: 34 222 007      Mobile: 0403 168 740      email: ian@pcdoc.net.au",
		},
		SignatureLines: []string{"Thank you,", "Ian"},
		SubtotalLabel:  "Subtotal:",
		TaxLabel:       "GST (10%):",
		TotalLabel:     "Total Including GST:",
		TaxRate:        0.10,
		ColumnWidth:    80,
	}
}

// BusinessProfileHolder hot-reloads the profile from disk so stationery
// edits do not require a restart.
type BusinessProfileHolder struct {
	current atomic.Value // holds BusinessProfile
}

func NewBusinessProfileHolder() (*BusinessProfileHolder, error) {
	v := viper.New()

	v.SetConfigName("invoicedesk")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/invoicedesk")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVOICEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultBusinessProfile()
	v.SetDefault("business.headerLines", defaults.HeaderLines)
	v.SetDefault("business.signatureLines", defaults.SignatureLines)
	v.SetDefault("business.subtotalLabel", defaults.SubtotalLabel)
	v.SetDefault("business.taxLabel", defaults.TaxLabel)
	v.SetDefault("business.totalLabel", defaults.TotalLabel)
	v.SetDefault("business.taxRate", defaults.TaxRate)
	v.SetDefault("business.columnWidth", defaults.ColumnWidth)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// no config file: defaults apply
	}

	var profile BusinessProfile
	if err := v.UnmarshalKey("business", &profile); err != nil {
		return nil, err
	}
	if err := validateBusinessProfile(profile); err != nil {
		return nil, err
	}

	holder := &BusinessProfileHolder{}
	holder.current.Store(profile)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated BusinessProfile
		if err := v.UnmarshalKey("business", &updated); err != nil {
			log.Printf("[business-profile] reload failed: %v", err)
			return
		}
		if err := validateBusinessProfile(updated); err != nil {
			log.Printf("[business-profile] invalid profile ignored: %v", err)
			return
		}
		holder.current.Store(updated)
	})

	return holder, nil
}

// StaticBusinessProfile wraps a fixed profile for callers that do not read
// configuration from disk, tests chiefly.
func StaticBusinessProfile(p BusinessProfile) *BusinessProfileHolder {
	h := &BusinessProfileHolder{}
	h.current.Store(p)
	return h
}

// Current returns the active profile snapshot.
func (h *BusinessProfileHolder) Current() BusinessProfile {
	return h.current.Load().(BusinessProfile)
}

func validateBusinessProfile(p BusinessProfile) error {
	if len(p.HeaderLines) == 0 {
		return errors.New("business profile needs at least one header line")
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		return errors.New("business profile tax rate must be in [0, 1)")
	}
	if p.ColumnWidth <= 0 {
		return errors.New("business profile column width must be positive")
	}
	return nil
}
