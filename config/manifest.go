// Package config loads the project manifest: the contracts a session
// deploys, their dependency order, and the accounts it funds.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stacksforge/clarion/simnet"
)

// Manifest is the on-disk project description.
type Manifest struct {
	Project   ProjectConfig             `mapstructure:"project" yaml:"project"`
	Contracts map[string]ContractConfig `mapstructure:"contracts" yaml:"contracts,omitempty"`
	Accounts  map[string]AccountConfig  `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

type ProjectConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
}

type ContractConfig struct {
	Path      string   `mapstructure:"path" yaml:"path"`
	DependsOn []string `mapstructure:"depends_on" yaml:"depends_on,omitempty"`
}

type AccountConfig struct {
	Address    string `mapstructure:"address" yaml:"address"`
	Balance    uint64 `mapstructure:"balance" yaml:"balance"`
	Mnemonic   string `mapstructure:"mnemonic" yaml:"mnemonic,omitempty"`
	Derivation string `mapstructure:"derivation" yaml:"derivation,omitempty"`
}

// NamedContract pairs a contract name with its configuration, in
// deployment order.
type NamedContract struct {
	Name   string
	Config ContractConfig
}

// CycleError reports a dependency cycle between contracts.
type CycleError struct {
	Contracts []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("config: cycling dependencies: %s", strings.Join(e.Contracts, ", "))
}

// LoadManifest reads a manifest file. YAML and TOML are both accepted;
// the format is inferred from the file extension.
func LoadManifest(path string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read manifest %s", path)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, errors.Wrapf(err, "parse manifest %s", path)
	}
	if m.Project.Name == "" {
		return nil, errors.Errorf("manifest %s: project name is required", path)
	}
	for name, c := range m.Contracts {
		if c.Path == "" {
			return nil, errors.Errorf("manifest %s: contract %q has no path", path, name)
		}
		for _, dep := range c.DependsOn {
			if _, ok := m.Contracts[dep]; !ok {
				return nil, errors.Errorf("manifest %s: contract %q depends on unknown contract %q", path, name, dep)
			}
		}
	}
	return &m, nil
}

// Save writes the manifest as YAML.
func (m *Manifest) Save(path string) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.Wrapf(err, "write manifest %s", path)
	}
	return nil
}

// OrderedContracts returns the contracts in deployment order: every
// contract appears after all of its dependencies. Ties break on name so
// the order is stable. Cyclic dependencies are an error naming the
// contracts on the cycle.
func (m *Manifest) OrderedContracts() ([]NamedContract, error) {
	if len(m.Contracts) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(m.Contracts))
	for name := range m.Contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(names))
	var order []NamedContract
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			// Everything from the first occurrence on the stack is on
			// the cycle.
			for i, n := range stack {
				if n == name {
					return &CycleError{Contracts: append([]string(nil), stack[i:]...)}
				}
			}
			return &CycleError{Contracts: []string{name}}
		}

		state[name] = visiting
		stack = append(stack, name)

		deps := append([]string(nil), m.Contracts[name].DependsOn...)
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		state[name] = done
		order = append(order, NamedContract{Name: name, Config: m.Contracts[name]})
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// BuildSettings assembles engine session settings from the manifest:
// accounts become funded identities, and each contract file is read from
// rootDir in dependency order. The account named "deployer" becomes the
// initial deployer for every contract.
func BuildSettings(m *Manifest, rootDir string) (simnet.SessionSettings, error) {
	var settings simnet.SessionSettings

	accountNames := make([]string, 0, len(m.Accounts))
	for name := range m.Accounts {
		accountNames = append(accountNames, name)
	}
	sort.Strings(accountNames)

	for _, name := range accountNames {
		a := m.Accounts[name]
		account := simnet.Account{
			Name:       name,
			Address:    a.Address,
			Balance:    a.Balance,
			Mnemonic:   a.Mnemonic,
			Derivation: a.Derivation,
		}
		if name == "deployer" {
			deployer := account
			settings.Deployer = &deployer
		}
		settings.Accounts = append(settings.Accounts, account)
	}

	deployerAddr := ""
	if settings.Deployer != nil {
		deployerAddr = settings.Deployer.Address
	}

	ordered, err := m.OrderedContracts()
	if err != nil {
		return simnet.SessionSettings{}, err
	}
	for _, c := range ordered {
		code, err := os.ReadFile(filepath.Join(rootDir, c.Config.Path))
		if err != nil {
			return simnet.SessionSettings{}, errors.Wrapf(err, "read contract %q", c.Name)
		}
		settings.Contracts = append(settings.Contracts, simnet.InitialContract{
			Name:     c.Name,
			Code:     string(code),
			Deployer: deployerAddr,
		})
	}

	return settings, nil
}
