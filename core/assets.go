package core

import (
	"bytes"
	"crypto/md5"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

const StaticPrefix = "/static/"

//go:embed static
var embeddedStatic embed.FS

type asset struct {
	content []byte
	hash    string
}

// Assets serves the embedded static files. In prod CSS and JS are minified
// once and kept in memory.
type Assets struct {
	env      string
	fsys     fs.FS
	minifier *minify.M
	cache    sync.Map
}

func NewAssets(env string) *Assets {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return newAssets(env, sub)
}

func newAssets(env string, fsys fs.FS) *Assets {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("application/javascript", minjs.Minify)
	return &Assets{env: env, fsys: fsys, minifier: m}
}

// Load returns the bytes served for name, minified when running in prod.
func (a *Assets) Load(name string) ([]byte, string, error) {
	if !fs.ValidPath(name) {
		return nil, "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	if a.env == "prod" {
		if cached, ok := a.cache.Load(name); ok {
			v := cached.(asset)
			return v.content, v.hash, nil
		}
	}

	original, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, "", fmt.Errorf("asset %s: %w", name, ErrNotFound)
	}

	content := original
	if a.env == "prod" {
		content = a.minify(name, original)
	}

	v := asset{content: content, hash: contentHash(content)}
	if a.env == "prod" {
		a.cache.Store(name, v)
	}
	return v.content, v.hash, nil
}

func (a *Assets) minify(name string, original []byte) []byte {
	var mediatype string
	switch path.Ext(name) {
	case ".css":
		mediatype = "text/css"
	case ".js":
		mediatype = "application/javascript"
	default:
		return original
	}

	if strings.Contains(path.Base(name), ".min.") {
		return original
	}

	var buf bytes.Buffer
	if err := a.minifier.Minify(mediatype, &buf, bytes.NewReader(original)); err != nil {
		return original
	}
	return buf.Bytes()
}

// URL returns a cache-busting URL for a /static/ path. Unknown paths are
// returned unchanged.
func (a *Assets) URL(p string) string {
	if !strings.HasPrefix(p, StaticPrefix) {
		return p
	}

	rel := strings.TrimPrefix(p, StaticPrefix)
	_, hash, err := a.Load(rel)
	if err != nil {
		return p
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%s%s?v=%s", StaticPrefix, rel, hash)
	return out.String()
}

func contentHash(content []byte) string {
	h := md5.New()
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))[:6]
}

const liveReloadScript = `<script>(function(){var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"` + ReloadPath + `");ws.onmessage=function(e){if(e.data==="reload"){location.reload();}};})();</script>`

// TemplateFuncs is the FuncMap available to every page template: sprig's
// helpers plus the site helpers below.
func TemplateFuncs(env string, assets *Assets) template.FuncMap {
	funcs := sprig.FuncMap()

	funcs["asset"] = func(p string) string {
		if assets == nil {
			return p
		}
		return assets.URL(p)
	}
	funcs["demoURL"] = func(templateFile string) string {
		return DemoPrefix + templateFile
	}
	funcs["liveReload"] = func() template.HTML {
		if env != "dev" {
			return ""
		}
		return template.HTML(liveReloadScript)
	}
	funcs["props"] = func(values ...interface{}) map[string]interface{} {
		if len(values)%2 != 0 {
			panic("props must be called with even number of arguments")
		}
		m := make(map[string]interface{}, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				panic("props keys must be strings")
			}
			m[key] = values[i+1]
		}
		return m
	}
	funcs["safeHTML"] = func(s interface{}) template.HTML {
		switch val := s.(type) {
		case template.HTML:
			return val
		case string:
			return template.HTML(val)
		default:
			return ""
		}
	}

	return funcs
}
