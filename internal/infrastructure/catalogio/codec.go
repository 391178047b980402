package catalogio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"i18nextract/internal/domain/entities"
)

// EncodeJSON renders a catalog as pretty-printed JSON, children in catalog
// order, LF line endings.
func EncodeJSON(c *entities.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONNode(&buf, c.Root(), 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeJSONNode(buf *bytes.Buffer, n *entities.CatalogNode, depth int) error {
	keys := n.Keys()
	if len(keys) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	for i, key := range keys {
		writeIndent(buf, depth+1)
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(encodedKey)
		buf.WriteString(": ")
		child := n.Child(key)
		if entry := child.Entry(); entry != nil {
			encodedValue, err := json.Marshal(entry.Value)
			if err != nil {
				return err
			}
			buf.Write(encodedValue)
		} else if err := writeJSONNode(buf, child, depth+1); err != nil {
			return err
		}
		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte('}')
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

// DecodeJSON reads a catalog, preserving key order. Scalar leaves are
// coerced to strings the way the original files carry them.
func DecodeJSON(data []byte) (*entities.Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("catalog root must be an object")
	}
	c := entities.NewCatalog()
	if err := decodeJSONObject(dec, c, nil); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeJSONObject(dec *json.Decoder, c *entities.Catalog, prefix []string) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		path := append(prefix, key)

		val, err := dec.Token()
		if err != nil {
			return err
		}
		switch v := val.(type) {
		case json.Delim:
			if v != '{' {
				return fmt.Errorf("%q: arrays are not supported in catalogs", key)
			}
			if err := decodeJSONObject(dec, c, path); err != nil {
				return err
			}
		case string:
			c.Set(path, v)
		case json.Number:
			c.Set(path, v.String())
		case bool:
			c.Set(path, strconv.FormatBool(v))
		case nil:
			c.Set(path, "")
		default:
			return fmt.Errorf("%q: unsupported value %v", key, val)
		}
	}
}

// EncodeYAML renders a catalog through a yaml.v3 node tree, which keeps the
// catalog's key order.
func EncodeYAML(c *entities.Catalog) ([]byte, error) {
	root := yamlNode(c.Root())
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNode(n *entities.CatalogNode) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range n.Keys() {
		child := n.Child(key)
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		var valNode *yaml.Node
		if entry := child.Entry(); entry != nil {
			valNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Value}
		} else {
			valNode = yamlNode(child)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node
}

// DecodeYAML reads a YAML catalog, preserving key order.
func DecodeYAML(data []byte) (*entities.Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	c := entities.NewCatalog()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog root must be a mapping")
	}
	if err := decodeYAMLMapping(root, c, nil); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeYAMLMapping(node *yaml.Node, c *entities.Catalog, prefix []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		path := append(prefix, key)
		switch val.Kind {
		case yaml.MappingNode:
			if err := decodeYAMLMapping(val, c, path); err != nil {
				return err
			}
		case yaml.ScalarNode:
			c.Set(path, val.Value)
		default:
			return fmt.Errorf("%q: unsupported value kind %d", key, val.Kind)
		}
	}
	return nil
}
