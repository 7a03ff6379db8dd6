package dictionary

import (
	"declension/sources/configuration"
	"declension/sources/texting/format"
	"declension/sources/tracing"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed words.toml
var embeddedWords []byte

var (
	ErrUnknownWord     = errors.New("unknown word")
	ErrEmptyDictionary = errors.New("dictionary has no words")
	ErrDuplicateWord   = errors.New("duplicate word")
)

type entry struct {
	One  string `toml:"one"`
	Few  string `toml:"few"`
	Many string `toml:"many"`
}

type wordsFile struct {
	Words map[string]entry `toml:"words"`
}

// Dictionary maps a lemma to its one, few and many forms.
type Dictionary struct {
	words map[string]format.FormSet
	log   *tracing.Logger
}

func NewDictionary(config *configuration.Config, log *tracing.Logger) (*Dictionary, error) {
	defer tracing.ProfilePoint(log, "Dictionary loaded", "dictionary.load")()

	d := &Dictionary{words: make(map[string]format.FormSet), log: log}

	if err := d.merge(embeddedWords, "embedded"); err != nil {
		return nil, err
	}

	if path := config.Dictionary.Path; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.E("Failed to read dictionary file", "path", path, tracing.InnerError, err)
			return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
		}
		if err := d.merge(data, path); err != nil {
			return nil, err
		}
	}

	if len(d.words) == 0 {
		return nil, ErrEmptyDictionary
	}

	log.I("Dictionary initialized", "words", len(d.words))
	return d, nil
}

func (d *Dictionary) merge(data []byte, source string) error {
	var file wordsFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		d.log.E("Failed to parse dictionary", "source", source, tracing.InnerError, err)
		return fmt.Errorf("failed to parse dictionary %s: %w", source, err)
	}

	// keys differing only by case or padding collapse into one lemma
	seen := make(map[string]string, len(file.Words))
	for lemma, e := range file.Words {
		if e.One == "" || e.Few == "" || e.Many == "" {
			return fmt.Errorf("word %q in %s: %w: all of one, few and many are required", lemma, source, format.ErrInvalidFormSet)
		}
		key := normalize(lemma)
		if other, ok := seen[key]; ok {
			d.log.E("Dictionary lemma defined twice", "source", source, tracing.Lemma, key)
			return fmt.Errorf("words %q and %q in %s: %w", other, lemma, source, ErrDuplicateWord)
		}
		seen[key] = lemma
	}

	for lemma, e := range file.Words {
		d.words[normalize(lemma)] = format.FormSet{e.One, e.Few, e.Many}
	}

	d.log.D("Dictionary source merged", "source", source, "words", len(file.Words))
	return nil
}

func (d *Dictionary) Lookup(lemma string) (format.FormSet, error) {
	forms, ok := d.words[normalize(lemma)]
	if !ok {
		return format.FormSet{}, fmt.Errorf("%w: %q", ErrUnknownWord, lemma)
	}
	return forms, nil
}

func (d *Dictionary) Lemmas() []string {
	lemmas := make([]string, 0, len(d.words))
	for lemma := range d.words {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)
	return lemmas
}

func normalize(lemma string) string {
	return strings.ToLower(strings.TrimSpace(lemma))
}
