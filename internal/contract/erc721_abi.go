package contract

// ERC721WithData and ERC721NoData are the two non-fungible token schemas.
func init() {
	Register(Contract{
		ID:          "ERC721WithData",
		Name:        "ERC-721 with data",
		Description: "Non-fungible token whose mint/transfer/burn/approve take a trailing data argument.",
		ABI:         concat(erc721Common, erc721WithDataWrites),
	})
	Register(Contract{
		ID:          "ERC721NoData",
		Name:        "ERC-721",
		Description: "Non-fungible token using mint/safeTransferFrom/burn/setApprovalForAll.",
		ABI:         concat(erc721Common, erc721NoDataWrites),
	})
}

var erc721Common = []ABIEntry{
	// ── Read ─────────────────────────────────────────────────────────────────
	{
		Name: "name", Type: "function",
		Outputs:         []ABIParam{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "symbol", Type: "function",
		Outputs:         []ABIParam{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "balanceOf", Type: "function",
		Inputs:          []ABIParam{{Name: "owner", Type: "address"}},
		Outputs:         []ABIParam{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "ownerOf", Type: "function",
		Inputs:          []ABIParam{{Name: "tokenId", Type: "uint256"}},
		Outputs:         []ABIParam{{Name: "", Type: "address"}},
		StateMutability: "view",
	},
	{
		Name: "isApprovedForAll", Type: "function",
		Inputs:          []ABIParam{{Name: "owner", Type: "address"}, {Name: "operator", Type: "address"}},
		Outputs:         []ABIParam{{Name: "", Type: "bool"}},
		StateMutability: "view",
	},
	// ── Events ───────────────────────────────────────────────────────────────
	{
		Name: "Transfer", Type: "event",
		Inputs: []ABIParam{
			{Name: "from", Type: "address", Indexed: true},
			{Name: "to", Type: "address", Indexed: true},
			{Name: "tokenId", Type: "uint256", Indexed: true},
		},
	},
	{
		Name: "Approval", Type: "event",
		Inputs: []ABIParam{
			{Name: "owner", Type: "address", Indexed: true},
			{Name: "approved", Type: "address", Indexed: true},
			{Name: "tokenId", Type: "uint256", Indexed: true},
		},
	},
	{
		Name: "ApprovalForAll", Type: "event",
		Inputs: []ABIParam{
			{Name: "owner", Type: "address", Indexed: true},
			{Name: "operator", Type: "address", Indexed: true},
			{Name: "approved", Type: "bool"},
		},
	},
}

var erc721WithDataWrites = []ABIEntry{
	{
		Name: "mintWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "to", Type: "address"}, {Name: "tokenId", Type: "uint256"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "transferWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "from", Type: "address"}, {Name: "to", Type: "address"}, {Name: "tokenId", Type: "uint256"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "burnWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "from", Type: "address"}, {Name: "tokenId", Type: "uint256"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "setApprovalForAllWithData", Type: "function",
		Inputs:          []ABIParam{{Name: "operator", Type: "address"}, {Name: "approved", Type: "bool"}, {Name: "data", Type: "bytes"}},
		StateMutability: "nonpayable",
	},
}

var erc721NoDataWrites = []ABIEntry{
	{
		Name: "mint", Type: "function",
		Inputs:          []ABIParam{{Name: "to", Type: "address"}, {Name: "tokenId", Type: "uint256"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "safeTransferFrom", Type: "function",
		Inputs:          []ABIParam{{Name: "from", Type: "address"}, {Name: "to", Type: "address"}, {Name: "tokenId", Type: "uint256"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "burn", Type: "function",
		Inputs:          []ABIParam{{Name: "tokenId", Type: "uint256"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "setApprovalForAll", Type: "function",
		Inputs:          []ABIParam{{Name: "operator", Type: "address"}, {Name: "approved", Type: "bool"}},
		StateMutability: "nonpayable",
	},
}
