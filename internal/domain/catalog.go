package domain

// CatalogKind identifica uma das listas editáveis usadas nos formulários de itens
type CatalogKind string

const (
	CatalogCategories CatalogKind = "categories"
	CatalogConditions CatalogKind = "conditions"
	CatalogStatuses   CatalogKind = "statuses"
)

func (k CatalogKind) Valid() bool {
	switch k {
	case CatalogCategories, CatalogConditions, CatalogStatuses:
		return true
	}
	return false
}

type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
