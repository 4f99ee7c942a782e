package contract_test

import (
	"testing"

	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueHoldsSchemasAndFactory(t *testing.T) {
	for _, id := range []string{"ERC20WithData", "ERC20NoData", "ERC721WithData", "ERC721NoData", contract.FactoryID} {
		c, ok := contract.Lookup(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, c.Description, id)
		assert.Equal(t, c.ABI, contract.ABIFor(id))
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := contract.Lookup("ERC1155")
	assert.False(t, ok)
	assert.Nil(t, contract.ABIFor("ERC1155"))
}

func TestAllSortedByID(t *testing.T) {
	all := contract.All()
	require.GreaterOrEqual(t, len(all), 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}

func TestRegisterIndexesEntries(t *testing.T) {
	contract.Register(contract.Contract{
		ID: "test-overloads",
		ABI: []contract.ABIEntry{
			{Name: "Moved", Type: "event"},
			{Name: "move", Type: "function", Inputs: []contract.ABIParam{{Type: "address"}}},
			{Name: "move", Type: "function", Inputs: []contract.ABIParam{{Type: "address"}, {Type: "bytes"}}},
			{Type: "constructor"},
		},
	})

	fn, err := contract.FindMethod("test-overloads", "move")
	require.NoError(t, err)
	assert.Equal(t, "move(address)", fn.Signature())

	ev, err := contract.FindEvent("test-overloads", "Moved")
	require.NoError(t, err)
	assert.Equal(t, "Moved()", ev.Signature())
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		contract.Register(contract.Contract{ID: "ERC20WithData"})
	})
}

// ---------------------------------------------------------------------------
// FindMethod / FindEvent
// ---------------------------------------------------------------------------

func TestFindMethod(t *testing.T) {
	fn, err := contract.FindMethod("ERC20WithData", "mintWithData")
	require.NoError(t, err)
	assert.Equal(t, "mintWithData(address,uint256,bytes)", fn.Signature())
	assert.True(t, fn.IsWriteFunction())
}

func TestFindMethodIgnoresEvents(t *testing.T) {
	_, err := contract.FindMethod("ERC20WithData", "Transfer")
	assert.ErrorIs(t, err, contract.ErrMethodNotFound)
}

func TestFindMethodUnknownABI(t *testing.T) {
	_, err := contract.FindMethod("ERC1155", "mint")
	assert.ErrorIs(t, err, contract.ErrMethodNotFound)
}

func TestFindMethodReturnsCopy(t *testing.T) {
	fn, err := contract.FindMethod("ERC20NoData", "mint")
	require.NoError(t, err)
	fn.Name = "changed"

	again, err := contract.FindMethod("ERC20NoData", "mint")
	require.NoError(t, err)
	assert.Equal(t, "mint", again.Name)
}

func TestFindEvent(t *testing.T) {
	ev, err := contract.FindEvent("ERC721NoData", "ApprovalForAll")
	require.NoError(t, err)
	assert.Equal(t, "ApprovalForAll(address,address,bool)", ev.Signature())

	_, err = contract.FindEvent("ERC721NoData", "mint")
	assert.ErrorIs(t, err, contract.ErrEventNotFound)
}

func TestSchemaABIsDifferOnlyInWrites(t *testing.T) {
	withData := contract.ABIFor("ERC20WithData")
	noData := contract.ABIFor("ERC20NoData")
	require.Len(t, withData, len(noData))

	for _, fn := range withData {
		if fn.IsWriteFunction() {
			last := fn.Inputs[len(fn.Inputs)-1]
			assert.Equal(t, "bytes", last.Type, fn.Name)
		}
	}
	for _, fn := range noData {
		if fn.IsWriteFunction() {
			for _, in := range fn.Inputs {
				assert.NotEqual(t, "bytes", in.Type, fn.Name)
			}
		}
	}
}
