package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config describes the demo tenant created by the seeder.
type Config struct {
	OwnerName     string `yaml:"owner_name"     env:"SEEDER_OWNER_NAME"     env-default:"Demo Owner"`
	OwnerEmail    string `yaml:"owner_email"    env:"SEEDER_OWNER_EMAIL"    env-default:"owner@shelfwatch.demo"`
	OwnerPassword string `yaml:"owner_password" env:"SEEDER_OWNER_PASSWORD" env-default:"demo1234"`
	PasswordCost  int    `yaml:"password_cost"  env:"SEEDER_PASSWORD_COST"  env-default:"10"`
	StoreName     string `yaml:"store_name"     env:"SEEDER_STORE_NAME"     env-default:"Downtown Grocery"`
	StoreAddress  string `yaml:"store_address"  env:"SEEDER_STORE_ADDRESS"  env-default:"123 Main Street, Suite 100"`
	DryRun        bool   `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
