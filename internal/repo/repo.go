package repo

import (
	"github.com/GlebRadaev/redstone-admin/internal/pg"
	decisionrepo "github.com/GlebRadaev/redstone-admin/internal/repo/decision-repo"
	"github.com/GlebRadaev/redstone-admin/internal/service/withdrawalservice"
)

type Repositories struct {
	DecisionRepo withdrawalservice.DecisionRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		DecisionRepo: decisionrepo.New(conn),
	}
}
