// Package content loads the text that fills the screens: loading captions,
// carousel cards, playlists, photos, awards, the reveal letter and the
// default star messages. A pack is YAML, validated against an embedded JSON
// Schema before it is decoded.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPack []byte

//go:embed schema.json
var schemaDoc []byte

const schemaURL = "schema://pixverse-content.json"

// Card kinds. Widget cards get their own setup when they become current.
const (
	KindText     = "text"
	KindMusic    = "music"
	KindPhotobox = "photobox"
	KindAwards   = "awards"
)

// Share platforms accepted by ShareURL.
const (
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
)

// ErrUnknownPlatform is returned by ShareURL for an unsupported platform.
var ErrUnknownPlatform = errors.New("unknown share platform")

// Pack is a decoded content pack.
type Pack struct {
	Loading      []string      `yaml:"loading"`
	Cards        []Card        `yaml:"cards"`
	Playlists    []Playlist    `yaml:"playlists"`
	Photos       []Photo       `yaml:"photos"`
	Awards       []Award       `yaml:"awards"`
	Letter       string        `yaml:"letter"`
	StarMessages []StarMessage `yaml:"starMessages"`
	Share        Share         `yaml:"share"`
}

// Card is one page of the wrapped carousel.
type Card struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`
	Body  string `yaml:"body"`
}

type Playlist struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type Photo struct {
	ID      string `yaml:"id"`
	Caption string `yaml:"caption"`
}

type Award struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// StarMessage is a message on the post-reveal board.
type StarMessage struct {
	Author string `yaml:"author"`
	Text   string `yaml:"text"`
}

type Share struct {
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Default returns the built-in pack.
func Default() (*Pack, error) {
	return Parse(defaultPack)
}

// Load reads and parses a pack from path.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content pack: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse validates data against the pack schema and decodes it.
func Parse(data []byte) (*Pack, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	return &p, nil
}

// validate checks a decoded YAML document. The schema library wants plain
// JSON values, so the document takes a round trip through encoding/json.
func validate(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("content is not JSON-compatible: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("content is not JSON-compatible: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("content schema validation failed: %w", err)
	}
	return nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaDoc, &def); err != nil {
			schemaErr = fmt.Errorf("parse content schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile content schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Award returns the award named name, or a generic trophy when the pack does
// not describe it.
func (p *Pack) Award(name string) Award {
	for _, a := range p.Awards {
		if a.Name == name {
			if a.Icon == "" {
				a.Icon = "🏆"
			}
			if a.Description == "" {
				a.Description = "Achievement unlocked!"
			}
			return a
		}
	}
	return Award{Name: name, Icon: "🏆", Description: "Achievement unlocked!"}
}

// AwardNames lists every award the pack describes, in order.
func (p *Pack) AwardNames() []string {
	names := make([]string, 0, len(p.Awards))
	for _, a := range p.Awards {
		names = append(names, a.Name)
	}
	return names
}

// Photo looks up a photo by id.
func (p *Pack) Photo(id string) (Photo, bool) {
	for _, ph := range p.Photos {
		if ph.ID == id {
			return ph, true
		}
	}
	return Photo{}, false
}

// ShareURL builds the link a player would open to share on platform.
// Instagram has no share intent, so the plain link is returned.
func (p *Pack) ShareURL(platform string) (string, error) {
	link := url.QueryEscape(p.Share.URL)
	text := url.QueryEscape(p.Share.Text)

	switch strings.ToLower(platform) {
	case PlatformTwitter:
		return "https://twitter.com/intent/tweet?text=" + text + "&url=" + link, nil
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + link, nil
	case PlatformInstagram:
		return p.Share.URL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
}
