package localstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// Dataset inicial de fábrica. Es el mismo juego de datos demo que trae la app
// la primera vez que se abre: sirve para recorrerla sin cargar nada.

// SeedProducts devuelve los productos iniciales.
func SeedProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "Taza de Cerámica Artesanal", SKU: "SKU001", Stock: 25, Price: decimal.NewFromInt(1500), ImageURL: "https://picsum.photos/200/200?random=1"},
		{ID: "2", Name: "Cuaderno de Cuero", SKU: "SKU002", Stock: 10, Price: decimal.NewFromInt(850), ImageURL: "https://picsum.photos/200/200?random=2"},
		{ID: "3", Name: "Botella de Acero Inoxidable", SKU: "SKU003", Stock: 50, Price: decimal.NewFromInt(2300), ImageURL: "https://picsum.photos/200/200?random=3"},
		{ID: "4", Name: "Vela Aromática de Vainilla", SKU: "SKU004", Stock: 32, Price: decimal.NewFromInt(950), ImageURL: "https://picsum.photos/200/200?random=4"},
	}
}

// SeedCustomers devuelve los clientes iniciales.
func SeedCustomers() []*entity.Customer {
	return []*entity.Customer{
		{ID: "1", Name: "Alejandro Martínez", Debt: decimal.NewFromInt(150000), ImageURL: "https://i.pravatar.cc/150?u=1"},
		{ID: "2", Name: "Sofía Rodríguez", Debt: decimal.NewFromFloat(5400.50), ImageURL: "https://i.pravatar.cc/150?u=2"},
		{ID: "3", Name: "Valentina Gómez", Debt: decimal.NewFromInt(25800), ImageURL: "https://i.pravatar.cc/150?u=3"},
		{ID: "4", Name: "Mateo Fernández", Debt: decimal.NewFromInt(1250), ImageURL: "https://i.pravatar.cc/150?u=4"},
		{ID: "5", Name: "Lucas Díaz", Debt: decimal.NewFromInt(89300), ImageURL: "https://i.pravatar.cc/150?u=5"},
	}
}

// SeedTransactions devuelve una semana de movimientos demo terminando hoy.
func SeedTransactions() []*entity.Transaction {
	now := time.Now()
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	return []*entity.Transaction{
		{ID: "t1", Type: entity.TransactionSale, Description: "Venta inicial", Amount: decimal.NewFromInt(50000), Date: daysAgo(6)},
		{ID: "t2", Type: entity.TransactionSale, Description: "Venta grande", Amount: decimal.NewFromInt(120000), Date: daysAgo(5)},
		{ID: "t3", Type: entity.TransactionExpense, Description: "Reposición", Amount: decimal.NewFromInt(30000), Date: daysAgo(4)},
		{ID: "t4", Type: entity.TransactionSale, Description: "Venta tarde", Amount: decimal.NewFromInt(80000), Date: daysAgo(3)},
		{ID: "t5", Type: entity.TransactionSale, Description: "Venta mañana", Amount: decimal.NewFromInt(45000), Date: daysAgo(2)},
		{ID: "t6", Type: entity.TransactionExpense, Description: "Alquiler", Amount: decimal.NewFromInt(150000), Date: daysAgo(1)},
		{ID: "t7", Type: entity.TransactionSale, Description: "Venta actual", Amount: decimal.NewFromInt(200000), Date: now},
	}
}

// SeedUsers devuelve los perfiles iniciales: un admin (PIN 1234) y un empleado
// demo (PIN 0000) con permisos recortados.
func SeedUsers() []*entity.User {
	return []*entity.User{
		{
			ID:          "admin",
			Name:        "Administrador",
			AvatarURL:   "https://i.pravatar.cc/150?u=admin",
			PIN:         "1234",
			Role:        entity.RoleAdmin,
			Permissions: entity.AllPermissions(),
		},
		{
			ID:          "emp1",
			Name:        "Empleado Demo",
			AvatarURL:   "https://i.pravatar.cc/150?u=emp1",
			PIN:         "0000",
			Role:        entity.RoleEmployee,
			Permissions: entity.Permissions{Inventory: true, Sales: true},
		},
	}
}
