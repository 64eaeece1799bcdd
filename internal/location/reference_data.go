package location

// ReferenceProvinces is the fixed province set seeded by setup.
func ReferenceProvinces() []Province {
	return []Province{
		{ID: "madrid", Name: "Madrid", Region: "Comunidad de Madrid"},
		{ID: "barcelona", Name: "Barcelona", Region: "Cataluña"},
		{ID: "valencia", Name: "Valencia", Region: "Comunidad Valenciana"},
		{ID: "sevilla", Name: "Sevilla", Region: "Andalucía"},
		{ID: "bilbao", Name: "Vizcaya", Region: "País Vasco"},
		{ID: "murcia", Name: "Murcia", Region: "Región de Murcia"},
		{ID: "palma", Name: "Baleares", Region: "Islas Baleares"},
		{ID: "las-palmas", Name: "Las Palmas", Region: "Canarias"},
		{ID: "alicante", Name: "Alicante", Region: "Comunidad Valenciana"},
		{ID: "cordoba", Name: "Córdoba", Region: "Andalucía"},
	}
}

// ReferenceCities is the fixed city set seeded by setup, one capital per province.
func ReferenceCities() []City {
	return []City{
		{ID: "madrid-city", Name: "Madrid", ProvinceID: "madrid"},
		{ID: "barcelona-city", Name: "Barcelona", ProvinceID: "barcelona"},
		{ID: "valencia-city", Name: "Valencia", ProvinceID: "valencia"},
		{ID: "sevilla-city", Name: "Sevilla", ProvinceID: "sevilla"},
		{ID: "bilbao-city", Name: "Bilbao", ProvinceID: "bilbao"},
		{ID: "murcia-city", Name: "Murcia", ProvinceID: "murcia"},
		{ID: "palma-city", Name: "Palma de Mallorca", ProvinceID: "palma"},
		{ID: "las-palmas-city", Name: "Las Palmas", ProvinceID: "las-palmas"},
		{ID: "alicante-city", Name: "Alicante", ProvinceID: "alicante"},
		{ID: "cordoba-city", Name: "Córdoba", ProvinceID: "cordoba"},
	}
}
