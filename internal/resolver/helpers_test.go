package resolver

import (
	"github.com/MKhiriev/go-admin-config/models"
)

// list builds a fragment using the shorthand list syntax.
func list(classes ...string) models.Fragment {
	f := models.Fragment{HasEntities: true}
	for i, class := range classes {
		f.Entities = append(f.Entities, models.EntityEntry{
			Key:         models.IndexKey(i),
			Declaration: models.ClassOnly(class),
		})
	}
	return f
}

// entry is one named declaration for fragment().
type entry struct {
	key  string
	decl models.Declaration
}

func named(key string, decl models.Declaration) entry {
	return entry{key: key, decl: decl}
}

// fragment builds a fragment using the mapping syntax.
func fragment(source string, entries ...entry) models.Fragment {
	f := models.Fragment{Source: source, HasEntities: true}
	for _, e := range entries {
		f.Entities = append(f.Entities, models.EntityEntry{
			Key:         models.NamedKey(e.key),
			Declaration: e.decl,
		})
	}
	return f
}

func names(rf models.ResolvedFragment) []string {
	out := make([]string, 0, len(rf.Entities))
	for _, e := range rf.Entities {
		out = append(out, e.Name)
	}
	return out
}
