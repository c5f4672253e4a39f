// Package seed holds the fixed catalog and kit data loaded at process start.
// Seeding is idempotent: re-running against an already-seeded database is a
// no-op, so the fixtures can stay wired into every startup.
package seed

// Defaults applied to fixture items that carry no explicit stock numbers.
const (
	DefaultQuantity    = 100
	DefaultMinQuantity = 20
)

// ItemFixture describes one catalog item to upsert, keyed by (name, category).
type ItemFixture struct {
	Name        string
	Description string
	Category    string
	Unit        string
}

// KitItemFixture references a catalog item by name; unresolved names are
// skipped during seeding rather than failing the whole batch.
type KitItemFixture struct {
	ItemName string
	Quantity int
	Required bool
}

// KitFixture describes one preset kit to upsert, keyed by (name, call type).
type KitFixture struct {
	Name        string
	CallType    string
	Description string
	Items       []KitItemFixture
}

// DefaultItems is the example inventory for each fixed category.
var DefaultItems = []ItemFixture{
	// Медикаменты
	{Name: "analgin", Description: "Анальгин, раствор для инъекций", Category: "Медикаменты", Unit: "ампула"},
	{Name: "adrenaline", Description: "Адреналин, раствор для инъекций", Category: "Медикаменты", Unit: "ампула"},
	{Name: "sodium_chloride", Description: "Натрия хлорид 0.9%, раствор", Category: "Медикаменты", Unit: "флакон"},
	// Перевязочные материалы
	{Name: "bandage", Description: "Бинт марлевый стерильный", Category: "Перевязочные материалы", Unit: "шт"},
	{Name: "gauze", Description: "Марля медицинская", Category: "Перевязочные материалы", Unit: "упаковка"},
	// Инструменты
	{Name: "scissors", Description: "Ножницы медицинские", Category: "Инструменты", Unit: "шт"},
	{Name: "tonometer", Description: "Тонометр механический", Category: "Инструменты", Unit: "шт"},
	{Name: "thermometer", Description: "Термометр электронный", Category: "Инструменты", Unit: "шт"},
	// Расходные материалы
	{Name: "gloves", Description: "Перчатки медицинские нестерильные", Category: "Расходные материалы", Unit: "пара"},
	{Name: "mask", Description: "Маска медицинская одноразовая", Category: "Расходные материалы", Unit: "шт"},
	{Name: "syringe", Description: "Шприц одноразовый 5мл", Category: "Расходные материалы", Unit: "шт"},
}

// DefaultKits are the preset kits per call flow.
var DefaultKits = []KitFixture{
	{
		Name:        "Базовый набор для зеленого потока",
		CallType:    "Зелёный поток",
		Description: "Стандартный набор для несрочных вызовов",
		Items: []KitItemFixture{
			{ItemName: "tonometer", Quantity: 1, Required: true},
			{ItemName: "gloves", Quantity: 2, Required: true},
			{ItemName: "mask", Quantity: 2, Required: true},
			{ItemName: "thermometer", Quantity: 1, Required: true},
		},
	},
	{
		Name:        "Набор для желтого потока",
		CallType:    "Жёлтый поток",
		Description: "Набор для срочных вызовов",
		Items: []KitItemFixture{
			{ItemName: "tonometer", Quantity: 1, Required: true},
			{ItemName: "gloves", Quantity: 4, Required: true},
			{ItemName: "mask", Quantity: 4, Required: true},
			{ItemName: "thermometer", Quantity: 1, Required: true},
			{ItemName: "bandage", Quantity: 2, Required: true},
			{ItemName: "syringe", Quantity: 5, Required: true},
			{ItemName: "analgin", Quantity: 2, Required: false},
			{ItemName: "sodium_chloride", Quantity: 1, Required: false},
		},
	},
	{
		Name:        "Набор для красного потока",
		CallType:    "Красный поток",
		Description: "Набор для экстренных вызовов",
		Items: []KitItemFixture{
			{ItemName: "tonometer", Quantity: 1, Required: true},
			{ItemName: "gloves", Quantity: 6, Required: true},
			{ItemName: "mask", Quantity: 6, Required: true},
			{ItemName: "thermometer", Quantity: 1, Required: true},
			{ItemName: "bandage", Quantity: 4, Required: true},
			{ItemName: "syringe", Quantity: 10, Required: true},
			{ItemName: "analgin", Quantity: 4, Required: true},
			{ItemName: "adrenaline", Quantity: 2, Required: true},
			{ItemName: "sodium_chloride", Quantity: 2, Required: true},
			{ItemName: "scissors", Quantity: 1, Required: true},
			{ItemName: "gauze", Quantity: 4, Required: true},
		},
	},
}
