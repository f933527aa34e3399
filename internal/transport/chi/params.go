package chi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/helix-bio/graphdex/pkg/model"
)

// binder decodes query parameters in the OpenAPI form style and keeps the
// first error. List parameters accept both repeated keys and
// comma-separated values.
type binder struct {
	query url.Values
	err   error
}

func newBinder(r *http.Request) *binder {
	return &binder{query: r.URL.Query()}
}

// scalar binds a single-valued parameter. Absent parameters leave dest
// untouched.
func (b *binder) scalar(name string, dest any) {
	if b.err != nil {
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, name, b.query, dest); err != nil {
		b.err = fmt.Errorf("parameter %q: %w", name, err)
	}
}

// list binds a multi-valued parameter.
func (b *binder) list(name string, dest *[]string) {
	if b.err != nil {
		return
	}
	var raw []string
	if err := runtime.BindQueryParameter("form", true, false, name, b.query, &raw); err != nil {
		b.err = fmt.Errorf("parameter %q: %w", name, err)
		return
	}
	*dest = splitListValues(raw)
}

// splitListValues flattens repeated and comma-separated forms into one list.
func splitListValues(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// bindAssociationQuery decodes the shared association filter set.
func bindAssociationQuery(b *binder) model.AssociationQuery {
	var p model.AssociationQuery
	b.list("category", &p.Category)
	b.list("predicate", &p.Predicate)
	b.list("subject", &p.Subject)
	b.list("object", &p.Object)
	b.list("entity", &p.Entity)
	b.scalar("subject_closure", &p.SubjectClosure)
	b.scalar("object_closure", &p.ObjectClosure)
	b.scalar("direct", &p.Direct)
	b.scalar("offset", &p.Offset)
	b.scalar("limit", &p.Limit)
	return p
}
