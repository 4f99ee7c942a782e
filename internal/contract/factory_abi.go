package contract

// FactoryID is the built-in ID of the token factory contract, which deploys
// new token contracts for pools created without an existing address.
const FactoryID = "TokenFactory"

func init() {
	Register(Contract{
		ID:          FactoryID,
		Name:        "Token Factory",
		Description: "Deploys ERC-20 / ERC-721 token contracts and emits TokenPoolCreation.",
		ABI:         factoryABI,
	})
}

var factoryABI = []ABIEntry{
	{
		Name: "create", Type: "function",
		Inputs: []ABIParam{
			{Name: "name", Type: "string"},
			{Name: "symbol", Type: "string"},
			{Name: "isFungible", Type: "bool"},
		},
		StateMutability: "nonpayable",
	},
	{
		Name: "createWithData", Type: "function",
		Inputs: []ABIParam{
			{Name: "name", Type: "string"},
			{Name: "symbol", Type: "string"},
			{Name: "isFungible", Type: "bool"},
			{Name: "data", Type: "bytes"},
		},
		StateMutability: "nonpayable",
	},
	{
		Name: "TokenPoolCreation", Type: "event",
		Inputs: []ABIParam{
			{Name: "contract_address", Type: "address", Indexed: true},
			{Name: "name", Type: "string"},
			{Name: "symbol", Type: "string"},
			{Name: "is_fungible", Type: "bool"},
			{Name: "data", Type: "bytes"},
		},
	},
}
