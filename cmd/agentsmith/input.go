package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/interview"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func isJSON(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return true
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// decodeRequirements accepts a single requirements object or a list of them.
// JSON uses camelCase keys and YAML uses snake_case keys.
func decodeRequirements(path string, data []byte) ([]types.AgentRequirements, error) {
	if isJSON(path, data) {
		trimmed := bytes.TrimSpace(data)
		if trimmed[0] == '[' {
			var list []types.AgentRequirements
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, fmt.Errorf("parse requirements: %w", err)
			}
			return list, nil
		}
		var one types.AgentRequirements
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("parse requirements: %w", err)
		}
		return []types.AgentRequirements{one}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse requirements: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("parse requirements: document is empty")
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		var list []types.AgentRequirements
		if err := node.Decode(&list); err != nil {
			return nil, fmt.Errorf("parse requirements: %w", err)
		}
		return list, nil
	}
	var one types.AgentRequirements
	if err := node.Decode(&one); err != nil {
		return nil, fmt.Errorf("parse requirements: %w", err)
	}
	return []types.AgentRequirements{one}, nil
}

// decodeResponses reads raw interview answers keyed by question id.
func decodeResponses(path string, data []byte) (interview.Responses, error) {
	responses := interview.Responses{}
	var err error
	if isJSON(path, data) {
		err = json.Unmarshal(data, &responses)
	} else {
		err = yaml.Unmarshal(data, &responses)
	}
	if err != nil {
		return nil, fmt.Errorf("parse responses: %w", err)
	}
	return responses, nil
}
