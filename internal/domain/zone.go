package domain

// Zone зона клуба: группа станций с общим тарифом
type Zone struct {
	ID          int64
	Name        string // Машинное имя: "standard", "vip", "premium", "ps5"
	DisplayName string
	Description string
	Color       string // HEX цвет для мини-аппа
	SortOrder   int
	Active      bool
}
