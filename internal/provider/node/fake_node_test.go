package node

import (
	"encoding/json"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	testKey, _    = crypto.HexToECDSA("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	testSender    = crypto.PubkeyToAddress(testKey.PublicKey)
	testMiner     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testBlockHash = common.HexToHash("0xb10c")
	testMixHash   = common.HexToHash("0x0a11")
	testNonce     = types.EncodeNonce(0x1234)
	errFakeNode   = errors.New("fake node failure")
)

// fixture holds one sealed block at height 1 with a transfer and a contract
// creation.
type fixture struct {
	transfer *types.Transaction
	creation *types.Transaction
	block    map[string]interface{}
	receipts map[common.Hash]*types.Receipt
	traces   map[common.Hash]json.RawMessage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	to := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	transfer := types.MustSignNewTx(testKey, types.NewEIP155Signer(big.NewInt(1)), &types.LegacyTx{
		Nonce:    3,
		GasPrice: big.NewInt(2_000_000_000),
		Gas:      21000,
		To:       &to,
		Value:    big.NewInt(5),
	})
	creation := types.MustSignNewTx(testKey, types.HomesteadSigner{}, &types.LegacyTx{
		Nonce:    4,
		GasPrice: big.NewInt(2_000_000_000),
		Gas:      100000,
		Data:     []byte{0x60, 0x00, 0x60, 0x00},
	})

	f := &fixture{
		transfer: transfer,
		creation: creation,
		receipts: map[common.Hash]*types.Receipt{},
		traces:   map[common.Hash]json.RawMessage{},
	}

	txs := []interface{}{
		txJSON(t, transfer, 0),
		txJSON(t, creation, 1),
	}
	f.block = map[string]interface{}{
		"hash":             testBlockHash,
		"number":           "0x1",
		"parentHash":       common.HexToHash("0xaaaa"),
		"sha3Uncles":       types.EmptyUncleHash,
		"miner":            testMiner,
		"stateRoot":        common.HexToHash("0x01"),
		"transactionsRoot": common.HexToHash("0x02"),
		"receiptsRoot":     common.HexToHash("0x03"),
		"logsBloom":        types.Bloom{},
		"gasUsed":          "0x11170",
		"gasLimit":         "0x7a1200",
		"timestamp":        "0x5f5e100",
		"difficulty":       "0x20000",
		"totalDifficulty":  "0x40000",
		"extraData":        "0x62756c6b",
		"mixHash":          testMixHash,
		"nonce":            testNonce,
		"uncles":           []common.Hash{},
		"size":             "0x21c",
		"transactions":     txs,
	}

	status := &types.Receipt{
		Status:            types.ReceiptStatusSuccessful,
		CumulativeGasUsed: 21000,
		GasUsed:           21000,
		TxHash:            transfer.Hash(),
		BlockHash:         testBlockHash,
		BlockNumber:       big.NewInt(1),
		TransactionIndex:  0,
		Logs: []*types.Log{{
			Address:     to,
			Topics:      []common.Hash{common.HexToHash("0x7e57")},
			Data:        []byte{0x01},
			BlockNumber: 1,
			TxHash:      transfer.Hash(),
			BlockHash:   testBlockHash,
			Index:       0,
		}},
	}
	root := &types.Receipt{
		PostState:         common.HexToHash("0x5747e").Bytes(),
		CumulativeGasUsed: 70000,
		GasUsed:           49000,
		TxHash:            creation.Hash(),
		ContractAddress:   crypto.CreateAddress(testSender, 4),
		BlockHash:         testBlockHash,
		BlockNumber:       big.NewInt(1),
		TransactionIndex:  1,
		Logs:              []*types.Log{},
	}
	f.receipts[transfer.Hash()] = status
	f.receipts[creation.Hash()] = root

	f.traces[transfer.Hash()] = json.RawMessage(`[{"type":"call","action":{"callType":"call","value":"0x5"},"result":{"gasUsed":"0x0","output":"0x"},"traceAddress":[],"subtraces":0,"transactionHash":"` + transfer.Hash().Hex() + `"}]`)
	return f
}

func txJSON(t *testing.T, tx *types.Transaction, index uint64) map[string]interface{} {
	t.Helper()

	raw, err := tx.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal tx: %v", err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal tx: %v", err)
	}
	out["blockHash"] = testBlockHash
	out["blockNumber"] = "0x1"
	out["transactionIndex"] = hexutil.Uint64(index)
	out["from"] = testSender
	return out
}

type fakeEth struct {
	fixture      *fixture
	fail         bool
	omitTD       bool
	receiptCalls atomic.Int32
}

func (e *fakeEth) GetBlockByNumber(tag string, full bool) (json.RawMessage, error) {
	if e.fail {
		return nil, errFakeNode
	}
	if tag != "0x1" && tag != "latest" && tag != "pending" {
		return nil, nil
	}

	block := make(map[string]interface{}, len(e.fixture.block))
	for k, v := range e.fixture.block {
		block[k] = v
	}
	if tag == "pending" {
		block["hash"] = nil
		block["number"] = nil
	}
	if e.omitTD {
		delete(block, "totalDifficulty")
	}
	if !full {
		block["transactions"] = []common.Hash{e.fixture.transfer.Hash(), e.fixture.creation.Hash()}
	}
	return json.Marshal(block)
}

func (e *fakeEth) GetTransactionReceipt(hash common.Hash) (*types.Receipt, error) {
	e.receiptCalls.Add(1)
	if e.fail {
		return nil, errFakeNode
	}
	return e.fixture.receipts[hash], nil
}

func (e *fakeEth) BlockNumber() (hexutil.Uint64, error) {
	if e.fail {
		return 0, errFakeNode
	}
	return 1, nil
}

type fakeTrace struct {
	fixture *fixture
}

func (tr *fakeTrace) Transaction(hash common.Hash) (json.RawMessage, error) {
	return tr.fixture.traces[hash], nil
}

func newFakeNode(t *testing.T) (*rpc.Client, *fakeEth, *fixture) {
	t.Helper()

	f := newFixture(t)
	eth := &fakeEth{fixture: f}

	server := rpc.NewServer()
	if err := server.RegisterName("eth", eth); err != nil {
		t.Fatalf("register eth: %v", err)
	}
	if err := server.RegisterName("trace", &fakeTrace{fixture: f}); err != nil {
		t.Fatalf("register trace: %v", err)
	}
	client := rpc.DialInProc(server)
	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})
	return client, eth, f
}
