package events

import "gitignore-tui/internal/logging"

type CatalogTracer struct{}

type ContentTracer struct{}

type FilterTracer struct{}

type UsageTracer struct{}

type SaveTracer struct{}

var (
	Catalog = CatalogTracer{}
	Content = ContentTracer{}
	Filter  = FilterTracer{}
	Usage   = UsageTracer{}
	Save    = SaveTracer{}
)

func (CatalogTracer) Requested(seq int) {
	logging.Trace("catalog.request", map[string]interface{}{"seq": seq})
}

func (CatalogTracer) Loaded(seq, count int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"seq": seq, "count": count})
}

func (CatalogTracer) Failed(seq int, err error) {
	logging.Trace("catalog.error", map[string]interface{}{"seq": seq, "error": errString(err)})
}

func (CatalogTracer) Stale(seq, latest int) {
	logging.Trace("catalog.stale", map[string]interface{}{"seq": seq, "latest": latest})
}

func (ContentTracer) Requested(generation int, names []string) {
	logging.Trace("content.request", map[string]interface{}{"generation": generation, "names": names})
}

func (ContentTracer) Generated(generation, size int) {
	logging.Trace("content.generated", map[string]interface{}{"generation": generation, "size": size})
}

func (ContentTracer) Failed(generation int, err error) {
	logging.Trace("content.error", map[string]interface{}{"generation": generation, "error": errString(err)})
}

func (ContentTracer) Dropped(generation, latest int) {
	logging.Trace("content.dropped", map[string]interface{}{"generation": generation, "latest": latest})
}

func (FilterTracer) Changed(query string, matches int) {
	logging.Trace("filter.change", map[string]interface{}{"query": query, "matches": matches})
}

func (UsageTracer) Recorded(name string, count int) {
	logging.Trace("usage.record", map[string]interface{}{"name": name, "count": count})
}

func (UsageTracer) Failed(err error) {
	logging.Trace("usage.error", map[string]interface{}{"error": errString(err)})
}

func (SaveTracer) Written(path, mode string, size int) {
	logging.Trace("save.written", map[string]interface{}{"path": path, "mode": mode, "size": size})
}

func (SaveTracer) Failed(path string, err error) {
	logging.Trace("save.error", map[string]interface{}{"path": path, "error": errString(err)})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
