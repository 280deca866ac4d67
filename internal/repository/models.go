package repository

// Block is a stored block. Numeric quantities are decimal strings in numeric(78,0) columns.
type Block struct {
	Number           uint64        `gorm:"primaryKey;autoIncrement:false"`
	Hash             *string       `gorm:"size:66"` // 0x + 64 hex chars
	Miner            *string       `gorm:"size:42"` // 0x + 40 hex chars
	Timestamp        string        `gorm:"type:numeric(78,0);not null"`
	TransactionCount uint64        `gorm:"not null"`
	Transactions     []Transaction `gorm:"foreignKey:BlockNumber;references:Number;constraint:OnDelete:CASCADE"`
}

type Transaction struct {
	BlockNumber uint64  `gorm:"primaryKey;autoIncrement:false"`
	Position    int     `gorm:"primaryKey;autoIncrement:false"`
	Hash        string  `gorm:"size:66;not null;index"`
	From        string  `gorm:"column:from_address;size:42;not null"`
	To          *string `gorm:"column:to_address;size:42"` // nil for contract creation
	Value       string  `gorm:"type:numeric(78,0);not null"`
	GasPrice    *string `gorm:"type:numeric(78,0)"`
	Gas         string  `gorm:"type:numeric(78,0);not null"`
}
