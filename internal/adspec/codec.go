package adspec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneList decodes the tagged scene union, dispatching on the "type" key.
type SceneList []Scene

func (l *SceneList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: scenes must be a list", value.Line)
	}

	out := make(SceneList, 0, len(value.Content))
	for i, node := range value.Content {
		sc, err := decodeScene(node)
		if err != nil {
			return fmt.Errorf("scenes[%d]: %w", i, err)
		}
		out = append(out, sc)
	}
	*l = out
	return nil
}

func decodeScene(node *yaml.Node) (Scene, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: scene must be a mapping", node.Line)
	}

	var head struct {
		Type Kind `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, err
	}

	switch head.Type {
	case KindTitle:
		return decodeAs[Title](node)
	case KindHeroText:
		return decodeAs[HeroText](node)
	case KindIconList:
		return decodeAs[IconList](node)
	case KindStatCounter:
		return decodeAs[StatCounter](node)
	case KindSplitFeature:
		return decodeAs[SplitFeature](node)
	case KindTestimonial:
		return decodeAs[Testimonial](node)
	case KindCarousel:
		return decodeAs[Carousel](node)
	case KindCTA:
		return decodeAs[CTA](node)
	case KindCTAOutro:
		return decodeAs[CTAOutro](node)
	case "":
		return nil, fmt.Errorf("line %d: scene type missing", node.Line)
	default:
		return nil, fmt.Errorf("line %d: unknown scene type %q (one of %s)", node.Line, head.Type, kindList())
	}
}

func kindList() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func decodeAs[T Scene](node *yaml.Node) (Scene, error) {
	var s T
	if err := node.Decode(&s); err != nil {
		return nil, err
	}
	return s, nil
}

func (l SceneList) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i, sc := range l {
		var node yaml.Node
		if err := node.Encode(sc); err != nil {
			return nil, fmt.Errorf("scenes[%d]: %w", i, err)
		}
		typeKey := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "type"}
		typeVal := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(sc.Kind())}
		node.Content = append([]*yaml.Node{typeKey, typeVal}, node.Content...)
		seq.Content = append(seq.Content, &node)
	}
	return seq, nil
}

// Load reads an ad spec (YAML or JSON) from disk
func Load(path string) (AdSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return AdSpec{}, err
	}
	defer f.Close()

	spec, err := Decode(f)
	if err != nil {
		return AdSpec{}, fmt.Errorf("spec %s: %w", path, err)
	}
	return spec, nil
}

// Decode parses an ad spec document
func Decode(r io.Reader) (AdSpec, error) {
	var spec AdSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return AdSpec{}, err
	}
	return spec, nil
}

// Write serializes a spec as YAML
func Write(spec AdSpec, path string) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
