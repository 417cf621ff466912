package models

// MerchantCategory associates a normalized merchant key with a category.
// A key maps to exactly one category; writing the same key again replaces it.
type MerchantCategory struct {
	MerchantKey string `yaml:"merchant_key"`
	Category    string `yaml:"category"`
}

// MerchantMappings is the YAML file form of the merchant directory.
type MerchantMappings struct {
	Merchants map[string]string `yaml:"merchants"`
}
