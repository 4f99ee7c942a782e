package contract

// ERC20WithData and ERC20NoData are the two fungible token schemas.
// Both share the EIP-20 read surface and events; they differ in whether the
// mutating methods take a trailing `bytes data` argument.
//
// Write selectors:
//
//	mintWithData(a,u256,bytes)       ERC20WithData
//	transferWithData(a,a,u256,bytes) ERC20WithData
//	burnWithData(a,u256,bytes)       ERC20WithData
//	approveWithData(a,u256,bytes)    ERC20WithData
//	mint(a,u256)                     ERC20NoData
//	transferFrom(a,a,u256)           ERC20NoData
//	burnFrom(a,u256)                 ERC20NoData
//	approve(a,u256)                  ERC20NoData
func init() {
	Register(Contract{
		ID:          "ERC20WithData",
		Name:        "ERC-20 with data",
		Description: "Fungible token whose mint/transfer/burn/approve take a trailing data argument.",
		ABI:         concat(erc20Common, erc20WithDataWrites),
	})
	Register(Contract{
		ID:          "ERC20NoData",
		Name:        "ERC-20",
		Description: "Fungible token using the plain mint/transferFrom/burnFrom/approve methods.",
		ABI:         concat(erc20Common, erc20NoDataWrites),
	})
}

var erc20Common = []ABIEntry{
	// ── Read ─────────────────────────────────────────────────────────────────
	{
		Name: "name", Type: "function",
		Inputs: nil, Outputs: []ABIParam{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "symbol", Type: "function",
		Inputs: nil, Outputs: []ABIParam{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "decimals", Type: "function",
		Inputs: nil, Outputs: []ABIParam{{Name: "", Type: "uint8"}},
		StateMutability: "view",
	},
	{
		Name: "totalSupply", Type: "function",
		Inputs: nil, Outputs: []ABIParam{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "balanceOf", Type: "function",
		Inputs:          []ABIParam{{Name: "account", Type: "address"}},
		Outputs:         []ABIParam{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "allowance", Type: "function",
		Inputs:          []ABIParam{{Name: "owner", Type: "address"}, {Name: "spender", Type: "address"}},
		Outputs:         []ABIParam{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	// ── Events ───────────────────────────────────────────────────────────────
	{
		Name: "Transfer", Type: "event",
		Inputs: []ABIParam{
			{Name: "from", Type: "address", Indexed: true},
			{Name: "to", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	},
	{
		Name: "Approval", Type: "event",
		Inputs: []ABIParam{
			{Name: "owner", Type: "address", Indexed: true},
			{Name: "spender", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	},
}

var erc20WithDataWrites = []ABIEntry{
	{
		Name: "mintWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "transferWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "from", Type: "address"}, {Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "burnWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "from", Type: "address"}, {Name: "amount", Type: "uint256"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "approveWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "spender", Type: "address"}, {Name: "amount", Type: "uint256"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
}

var erc20NoDataWrites = []ABIEntry{
	{
		Name: "mint", Type: "function",
		Inputs:          []ABIParam{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "transferFrom", Type: "function",
		Inputs:          []ABIParam{{Name: "from", Type: "address"}, {Name: "to", Type: "address"}, {Name: "value", Type: "uint256"}},
		Outputs:         []ABIParam{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "burnFrom", Type: "function",
		Inputs:          []ABIParam{{Name: "account", Type: "address"}, {Name: "amount", Type: "uint256"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "approve", Type: "function",
		Inputs:          []ABIParam{{Name: "spender", Type: "address"}, {Name: "value", Type: "uint256"}},
		Outputs:         []ABIParam{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},
}

func concat(parts ...[]ABIEntry) []ABIEntry {
	var out []ABIEntry
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
