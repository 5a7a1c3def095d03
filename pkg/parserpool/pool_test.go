package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparks/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		category string
		code     nomcode.Code
	}{
		{"Vascular Plant", nomcode.Botanical},
		{"Nonvascular Plant", nomcode.Botanical},
		{"Mammal", nomcode.Zoological},
		{"Slug/Snail", nomcode.Zoological},
		{"Fungi", nomcode.Zoological},
		{"", nomcode.Zoological},
	}

	for _, v := range tests {
		assert.Equal(t, v.code, parserpool.CodeFor(v.category), v.category)
	}
}

func TestParse(t *testing.T) {
	p := parserpool.New(2)
	defer p.Close()

	tests := []struct {
		name      string
		code      nomcode.Code
		parsed    bool
		canonical string
	}{
		{"Plantago major L.", nomcode.Botanical, true, "Plantago major"},
		{"Canis lupus Linnaeus, 1758", nomcode.Zoological, true, "Canis lupus"},
		{"Rosa acicularis var. acicularis", nomcode.Botanical, true, "Rosa acicularis acicularis"},
		{"1234", nomcode.Zoological, false, ""},
	}

	for _, v := range tests {
		res, err := p.Parse(v.name, v.code)
		require.NoError(t, err, v.name)
		assert.Equal(t, v.parsed, res.Parsed, v.name)
		if v.parsed {
			assert.Equal(t, v.canonical, res.Canonical.Simple, v.name)
		}
	}
}

func TestParseCodeDifference(t *testing.T) {
	p := parserpool.New(1)
	defer p.Close()

	zoo, err := p.Parse("Aus (Bus)", nomcode.Zoological)
	require.NoError(t, err)
	bot, err := p.Parse("Aus (Bus)", nomcode.Botanical)
	require.NoError(t, err)

	assert.Equal(t, "Bus", zoo.Canonical.Simple)
	assert.Equal(t, "Aus", bot.Canonical.Simple)
}

func TestParseUnsupportedCode(t *testing.T) {
	p := parserpool.New(1)
	defer p.Close()

	_, err := p.Parse("Escherichia coli", nomcode.Bacterial)
	assert.Error(t, err)
}

func TestParseConcurrent(t *testing.T) {
	p := parserpool.New(4)
	defer p.Close()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := nomcode.Botanical
			name := "Plantago major"
			if i%2 == 0 {
				code = nomcode.Zoological
				name = "Ursus arctos"
			}
			for range 10 {
				res, err := p.Parse(name, code)
				assert.NoError(t, err)
				assert.True(t, res.Parsed)
			}
		}()
	}
	wg.Wait()
}
