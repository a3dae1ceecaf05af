package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"tender-dapp/internal/tendererrors"
)

// Method names of the Tender contract
const (
	MethodTenderCounter    = "tenderCounter"
	MethodGetTenderDetails = "getTenderDetails"
	MethodGetBids          = "getBids"
	MethodCreateTender     = "createTender"
	MethodSubmitBid        = "submitBid"
	MethodChooseWinner     = "chooseWinner"
	MethodSelectWinner     = "selectWinner"
)

// DefaultABI describes the deployed Tender contract
const DefaultABI = `[
  {"type":"function","name":"tenderCounter","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getTenderDetails","stateMutability":"view",
   "inputs":[{"name":"_tenderId","type":"uint256"}],
   "outputs":[{"name":"id","type":"uint256"},{"name":"description","type":"string"},
              {"name":"minBid","type":"uint256"},{"name":"isOpen","type":"bool"},
              {"name":"winner","type":"address"}]},
  {"type":"function","name":"getBids","stateMutability":"view",
   "inputs":[{"name":"_tenderId","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple[]","internalType":"struct Tender.Bid[]","components":[
     {"name":"bidder","type":"address"},{"name":"bidAmount","type":"uint256"}]}]},
  {"type":"function","name":"createTender","stateMutability":"nonpayable",
   "inputs":[{"name":"_description","type":"string"},{"name":"_minBid","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"submitBid","stateMutability":"nonpayable",
   "inputs":[{"name":"_tenderId","type":"uint256"},{"name":"_bidAmount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"chooseWinner","stateMutability":"nonpayable",
   "inputs":[{"name":"_tenderId","type":"uint256"},{"name":"_winner","type":"address"}],"outputs":[]}
]`

var requiredMethods = []string{
	MethodTenderCounter,
	MethodGetTenderDetails,
	MethodGetBids,
	MethodCreateTender,
	MethodSubmitBid,
}

// ParseABI parses either a raw ABI array or a Hardhat artifact ({"abi": [...]})
func ParseABI(data []byte) (abi.ABI, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal([]byte(trimmed), &artifact); err != nil {
			return abi.ABI{}, fmt.Errorf("contract: failed to decode artifact: %w", err)
		}
		if len(artifact.ABI) == 0 {
			return abi.ABI{}, fmt.Errorf("contract: artifact has no abi: %w", tendererrors.ErrUnsupportedContract)
		}
		trimmed = string(artifact.ABI)
	}

	parsed, err := abi.JSON(strings.NewReader(trimmed))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("contract: failed to parse abi: %w", err)
	}
	return parsed, nil
}

// LoadABI reads the ABI from path, or returns DefaultABI when path is empty
func LoadABI(path string) (abi.ABI, error) {
	if path == "" {
		return ParseABI([]byte(DefaultABI))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("contract: failed to read abi %s: %w", path, err)
	}
	return ParseABI(data)
}

// ResolveWinnerMethod checks that the ABI exposes the full read/write surface
// with decodable read outputs and returns the name of its winner selection
// write. Deployed variants name it either chooseWinner or selectWinner.
func ResolveWinnerMethod(parsed abi.ABI) (string, error) {
	for _, name := range requiredMethods {
		if _, ok := parsed.Methods[name]; !ok {
			return "", fmt.Errorf("contract: abi lacks %s: %w", name, tendererrors.ErrUnsupportedContract)
		}
	}
	if err := checkReadOutputs(parsed); err != nil {
		return "", err
	}
	for _, name := range []string{MethodChooseWinner, MethodSelectWinner} {
		if _, ok := parsed.Methods[name]; ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("contract: abi lacks a winner selection method: %w", tendererrors.ErrUnsupportedContract)
}

// checkReadOutputs rejects read methods whose outputs the decoders cannot handle:
// tenderCounter() -> uint, getTenderDetails -> ([uint,] string, uint, bool, address)
// and getBids -> (address, uint)[]
func checkReadOutputs(parsed abi.ABI) error {
	unsupported := func(method string, outputs abi.Arguments) error {
		return fmt.Errorf("contract: unexpected %s outputs %s: %w", method, outputTypes(outputs), tendererrors.ErrUnsupportedContract)
	}

	counter := parsed.Methods[MethodTenderCounter].Outputs
	if len(counter) != 1 || !isBigUint(counter[0].Type) {
		return unsupported(MethodTenderCounter, counter)
	}

	details := parsed.Methods[MethodGetTenderDetails].Outputs
	fields := details
	if len(details) == 5 {
		if !isBigUint(details[0].Type) {
			return unsupported(MethodGetTenderDetails, details)
		}
		fields = details[1:]
	}
	if len(fields) != 4 ||
		fields[0].Type.T != abi.StringTy ||
		!isBigUint(fields[1].Type) ||
		fields[2].Type.T != abi.BoolTy ||
		fields[3].Type.T != abi.AddressTy {
		return unsupported(MethodGetTenderDetails, details)
	}

	bids := parsed.Methods[MethodGetBids].Outputs
	if len(bids) != 1 || bids[0].Type.T != abi.SliceTy || bids[0].Type.Elem == nil {
		return unsupported(MethodGetBids, bids)
	}
	elem := bids[0].Type.Elem
	if elem.T != abi.TupleTy || len(elem.TupleElems) != 2 ||
		elem.TupleElems[0].T != abi.AddressTy ||
		!isBigUint(*elem.TupleElems[1]) {
		return unsupported(MethodGetBids, bids)
	}
	return nil
}

// isBigUint reports whether t unpacks into *big.Int
func isBigUint(t abi.Type) bool {
	return t.T == abi.UintTy && t.Size > 64
}

func outputTypes(outputs abi.Arguments) string {
	names := make([]string, 0, len(outputs))
	for _, o := range outputs {
		names = append(names, o.Type.String())
	}
	return "(" + strings.Join(names, ",") + ")"
}
