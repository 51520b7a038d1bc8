package models

import (
	"gorm.io/gorm"
)

// AuditLog registra eventos de inserção para rastreio simples.
// Gravação em melhor esforço: falha de auditoria nunca interrompe o fluxo.
type AuditLog struct {
	gorm.Model
	Usuario   string `gorm:"size:150;index" json:"usuario"`
	Transacao string `gorm:"size:50;not null" json:"transacao"`
	Tipo      string `gorm:"size:20;not null" json:"tipo"`
}
