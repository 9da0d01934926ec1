package simnet

// Account is one funded identity from the session settings.
type Account struct {
	Name       string
	Address    string
	Balance    uint64
	Mnemonic   string
	Derivation string
}

// InitialContract is a contract to deploy before the first block.
type InitialContract struct {
	Name     string
	Code     string
	Deployer string
}

// SessionSettings describes the initial chain state an engine starts
// from: funded accounts and contracts deployed in dependency order.
type SessionSettings struct {
	Accounts  []Account
	Contracts []InitialContract
	Deployer  *Account
}

// AccountsByName returns the accounts keyed by name for test lookups.
func (s SessionSettings) AccountsByName() map[string]Account {
	out := make(map[string]Account, len(s.Accounts))
	for _, a := range s.Accounts {
		out[a.Name] = a
	}
	return out
}
