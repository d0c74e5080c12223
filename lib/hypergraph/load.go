package hypergraph

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/jaewan01/hypersweep/lib/errors"
)

var jsonApi = jsoniter.ConfigCompatibleWithStandardLibrary

// xgiFile is the on-disk layout of an xgi-data dataset: hypergraph-level
// attributes, per-node and per-edge attributes, and the incidence dict
// mapping edge IDs to member node IDs.
type xgiFile struct {
	HypergraphData map[string]interface{}     `json:"hypergraph-data"`
	NodeData       map[string]json.RawMessage `json:"node-data"`
	EdgeData       map[string]json.RawMessage `json:"edge-data"`
	EdgeDict       map[string][]interface{}   `json:"edge-dict"`
}

// LoadDataset reads <dataDirectory>/<dataset>.json in the xgi-data format.
func LoadDataset(dataDirectory string, dataset string) (*Hypergraph, error) {
	return LoadFile(filepath.Join(dataDirectory, dataset+".json"))
}

func LoadFile(path string) (*Hypergraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read dataset file %s", path)
	}
	h, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse dataset file %s", path)
	}
	return h, nil
}

// Parse decodes an xgi-data JSON document.  Edge IDs are visited in sorted
// order (numerically when possible) so the resulting node and edge order is
// stable regardless of map iteration order.
func Parse(data []byte) (*Hypergraph, error) {
	var file xgiFile
	if err := jsonApi.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "invalid xgi-data document")
	}
	if file.EdgeDict == nil {
		return nil, errors.New(`missing "edge-dict"`)
	}

	edgeIDs := make([]string, 0, len(file.EdgeDict))
	for edge := range file.EdgeDict {
		edgeIDs = append(edgeIDs, edge)
	}
	sortIDs(edgeIDs)

	h := New()
	for _, edge := range edgeIDs {
		members := make([]string, 0, len(file.EdgeDict[edge]))
		for _, raw := range file.EdgeDict[edge] {
			id, err := idString(raw)
			if err != nil {
				return nil, errors.Wrap(err, "edge %q has an invalid member", edge)
			}
			members = append(members, id)
		}
		if err := h.AddEdge(edge, members); err != nil {
			return nil, err
		}
	}

	// Isolated nodes only appear in node-data.
	if len(file.NodeData) > 0 {
		nodeIDs := make([]string, 0, len(file.NodeData))
		for node := range file.NodeData {
			nodeIDs = append(nodeIDs, node)
		}
		sortIDs(nodeIDs)
		for _, node := range nodeIDs {
			h.AddNode(node)
		}
	}
	return h, nil
}

func idString(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", errors.New("unsupported id type %T", raw)
	}
}

// sortIDs orders numerically when every ID parses as an integer, falling
// back to lexicographic order.
func sortIDs(ids []string) {
	numeric := make(map[string]int64, len(ids))
	allNumeric := true
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			allNumeric = false
			break
		}
		numeric[id] = n
	}
	if allNumeric {
		sort.Slice(ids, func(i, j int) bool { return numeric[ids[i]] < numeric[ids[j]] })
	} else {
		sort.Strings(ids)
	}
}
