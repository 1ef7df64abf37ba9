package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fekuna/tortilleria-pos/internal/cart"
	"github.com/fekuna/tortilleria-pos/internal/catalog"
	catalogdto "github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/movement"
	"github.com/fekuna/tortilleria-pos/internal/sales"
	salesUCPkg "github.com/fekuna/tortilleria-pos/internal/sales/usecase"
	"github.com/fekuna/tortilleria-pos/internal/storage"
	"github.com/fekuna/tortilleria-pos/internal/user"
	userdto "github.com/fekuna/tortilleria-pos/internal/user/dto"
)

// session is the terminal presentation layer. It owns navigation,
// confirmation prompts and session policy (for example the rule that the
// logged-in user cannot delete their own account); the usecases validate
// everything again on their own.
type session struct {
	catalog   catalog.UseCase
	sales     sales.UseCase
	users     user.UseCase
	movements movement.Repository
	gateway   storage.Gateway

	in *bufio.Scanner

	username string
	current  *model.User
}

func newSession(
	cat catalog.UseCase,
	sal sales.UseCase,
	usr user.UseCase,
	mov movement.Repository,
	gw storage.Gateway,
) *session {
	return &session{
		catalog:   cat,
		sales:     sal,
		users:     usr,
		movements: mov,
		gateway:   gw,
		in:        bufio.NewScanner(os.Stdin),
	}
}

func (s *session) run(ctx context.Context) {
	for {
		fmt.Println("\n=== Tortillería La Guadalupana ===")
		fmt.Println("1) Comprar (autoservicio)")
		fmt.Println("2) Iniciar sesión")
		fmt.Println("3) Salir")
		switch s.prompt("> ") {
		case "1":
			s.customerMode(ctx)
		case "2":
			s.login(ctx)
		case "3":
			return
		}
	}
}

func (s *session) login(ctx context.Context) {
	username := s.prompt("Usuario: ")
	password := s.prompt("Contraseña: ")

	u, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		fmt.Println("Usuario o contraseña incorrectos.")
		return
	}
	s.username = username
	s.current = u
	fmt.Printf("¡Bienvenido %s!\n", u.Name)

	if u.Role == model.RoleAdmin {
		s.adminMenu(ctx)
	} else {
		s.employeeMenu(ctx)
	}
	s.username = ""
	s.current = nil
}

func (s *session) customerMode(ctx context.Context) {
	s.cartMenu(ctx, model.SelfServiceUser)
}

func (s *session) employeeMenu(ctx context.Context) {
	for {
		fmt.Printf("\n--- Empleado: %s ---\n", s.current.Name)
		fmt.Println("1) Ver inventario")
		fmt.Println("2) Nueva venta")
		fmt.Println("3) Ventas de hoy")
		fmt.Println("4) Cerrar sesión")
		switch s.prompt("> ") {
		case "1":
			s.showInventory(ctx)
		case "2":
			s.cartMenu(ctx, s.current.Name)
		case "3":
			s.showTodaysSales(ctx)
		case "4":
			return
		}
	}
}

func (s *session) adminMenu(ctx context.Context) {
	for {
		fmt.Printf("\n--- Administración: %s ---\n", s.current.Name)
		fmt.Println("1) Ver inventario")
		fmt.Println("2) Nueva venta")
		fmt.Println("3) Gestión de inventario")
		fmt.Println("4) Gestión de usuarios")
		fmt.Println("5) Reportes de ventas")
		fmt.Println("6) Respaldo de datos")
		fmt.Println("7) Estadísticas del sistema")
		fmt.Println("8) Cerrar sesión")
		switch s.prompt("> ") {
		case "1":
			s.showInventory(ctx)
		case "2":
			s.cartMenu(ctx, s.current.Name)
		case "3":
			s.manageInventory(ctx)
		case "4":
			s.manageUsers(ctx)
		case "5":
			s.reports(ctx)
		case "6":
			s.backupMenu(ctx)
		case "7":
			s.systemStats(ctx)
		case "8":
			return
		}
	}
}

// --- carts and checkout ---

func (s *session) cartMenu(ctx context.Context, seller string) {
	c := cart.New(s.catalog)
	for {
		fmt.Println("\n1) Ver productos  2) Agregar  3) Quitar  4) Ver carrito  5) Vaciar  6) Pagar  7) Volver")
		switch s.prompt("> ") {
		case "1":
			s.showInventory(ctx)
		case "2":
			key := s.prompt("Clave del producto: ")
			qty, err := s.promptFloat("Cantidad: ")
			if err != nil {
				fmt.Println("Cantidad inválida.")
				continue
			}
			if err := c.Add(ctx, key, qty); err != nil {
				fmt.Println("No se pudo agregar:", err)
				continue
			}
			fmt.Println("Producto agregado al carrito.")
		case "3":
			c.Remove(s.prompt("Clave del producto: "))
		case "4":
			s.showCart(ctx, c)
		case "5":
			if s.confirm("¿Vaciar todo el carrito?") {
				c.Clear()
			}
		case "6":
			s.checkout(ctx, c, seller)
		case "7":
			return
		}
	}
}

func (s *session) showCart(ctx context.Context, c *cart.Cart) {
	lines, err := c.Lines(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(lines) == 0 {
		fmt.Println("El carrito está vacío.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, l := range lines {
		fmt.Fprintf(w, "%s\t%.1f %s\t× $%.2f\t$%.2f\n", l.Name, l.Quantity, l.Unit, l.UnitPrice, l.Subtotal)
	}
	w.Flush()
	total, err := c.Total(ctx)
	if err == nil {
		fmt.Printf("TOTAL: $%.2f\n", total)
	}
}

func (s *session) checkout(ctx context.Context, c *cart.Cart, seller string) {
	if c.IsEmpty() {
		fmt.Println("Agregue productos al carrito antes de pagar.")
		return
	}
	s.showCart(ctx, c)
	if !s.confirm("¿Confirma la compra?") {
		return
	}
	sale, err := s.sales.Checkout(ctx, c, seller)
	if sale != nil {
		fmt.Printf("Venta procesada. Total: $%.2f\n", sale.Total)
	}
	if err != nil {
		fmt.Println("Aviso:", err)
	}
}

// --- inventory ---

func (s *session) showInventory(ctx context.Context) {
	entries, err := s.catalog.ListProducts(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLAVE\tPRODUCTO\tSTOCK\tPRECIO\tESTADO")
	for _, e := range entries {
		p := e.Product
		fmt.Fprintf(w, "%s\t%s\t%.1f %s\t$%.2f\t%s\n", e.Key, p.Name, p.Stock, p.Unit, p.Price, p.StockStatus())
	}
	w.Flush()
}

func (s *session) manageInventory(ctx context.Context) {
	for {
		fmt.Println("\n1) Ver inventario  2) Agregar producto  3) Editar producto  4) Movimientos  5) Volver")
		switch s.prompt("> ") {
		case "1":
			s.showInventory(ctx)
		case "2":
			s.createProduct(ctx)
		case "3":
			s.editProduct(ctx)
		case "4":
			s.showMovements(ctx)
		case "5":
			return
		}
	}
}

func (s *session) createProduct(ctx context.Context) {
	input := &catalogdto.CreateProductInput{
		Name:        s.prompt("Nombre: "),
		Description: s.prompt("Descripción: "),
		Unit:        s.prompt("Unidad (kg, pieza...): "),
		Category:    s.prompt("Categoría: "),
	}
	var err error
	if input.Price, err = s.promptFloat("Precio: "); err != nil {
		fmt.Println("Precio inválido.")
		return
	}
	if input.Stock, err = s.promptFloat("Stock inicial: "); err != nil {
		fmt.Println("Stock inválido.")
		return
	}
	key, err := s.catalog.CreateProduct(ctx, input)
	if err != nil {
		fmt.Println("No se pudo crear:", err)
		return
	}
	fmt.Printf("Producto '%s' agregado con clave %s.\n", input.Name, key)
	s.save(ctx)
}

func (s *session) editProduct(ctx context.Context) {
	key := s.prompt("Clave del producto: ")
	p, err := s.catalog.GetProduct(ctx, key)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := &catalogdto.UpdateProductInput{
		Key:         key,
		Name:        s.promptDefault("Nombre", p.Name),
		Description: s.promptDefault("Descripción", p.Description),
		Unit:        s.promptDefault("Unidad", p.Unit),
		Category:    s.promptDefault("Categoría", p.Category),
		Actor:       s.current.Name,
	}
	if input.Price, err = s.promptFloatDefault("Precio", p.Price); err != nil {
		fmt.Println("Precio inválido.")
		return
	}
	if input.Stock, err = s.promptFloatDefault("Stock", p.Stock); err != nil {
		fmt.Println("Stock inválido.")
		return
	}
	if err := s.catalog.UpdateProduct(ctx, input); err != nil {
		fmt.Println("No se pudo actualizar:", err)
		return
	}
	fmt.Println("Cambios guardados.")
	s.save(ctx)
}

func (s *session) showMovements(ctx context.Context) {
	key := s.prompt("Clave del producto (vacío = todos): ")
	var (
		movements []model.StockMovement
		err       error
	)
	if key == "" {
		movements, err = s.movements.ListAll(ctx)
	} else {
		movements, err = s.movements.ListByProduct(ctx, key)
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FECHA\tPRODUCTO\tCAMBIO\tANTES\tDESPUÉS\tREF\tRESPONSABLE")
	for _, m := range movements {
		fmt.Fprintf(w, "%s\t%s\t%+.1f\t%.1f\t%.1f\t%s\t%s\n",
			m.Date.Format("2006-01-02 15:04:05"), m.ProductKey, m.Delta, m.Before, m.After, m.Reference, m.Actor)
	}
	w.Flush()
}

// --- users ---

func (s *session) manageUsers(ctx context.Context) {
	for {
		fmt.Println("\n1) Listar usuarios  2) Agregar  3) Editar  4) Eliminar  5) Volver")
		switch s.prompt("> ") {
		case "1":
			s.listUsers(ctx)
		case "2":
			input := &userdto.CreateUserInput{
				Username: s.prompt("Nombre de usuario: "),
				Name:     s.prompt("Nombre completo: "),
				Password: s.prompt("Contraseña: "),
				Role:     s.promptRole(),
			}
			if err := s.users.CreateUser(ctx, input); err != nil {
				fmt.Println("No se pudo crear:", err)
				continue
			}
			fmt.Println("Usuario creado.")
			s.save(ctx)
		case "3":
			username := s.prompt("Usuario a editar: ")
			u, err := s.users.GetUser(ctx, username)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			input := &userdto.UpdateUserInput{
				Username: username,
				Name:     s.promptDefault("Nombre completo", u.Name),
				Password: s.promptDefault("Contraseña", u.Password),
				Role:     s.promptRole(),
			}
			if err := s.users.UpdateUser(ctx, input); err != nil {
				fmt.Println("No se pudo actualizar:", err)
				continue
			}
			fmt.Println("Usuario actualizado.")
			s.save(ctx)
		case "4":
			username := s.prompt("Usuario a eliminar: ")
			if username == s.username {
				// Session policy, enforced here and not in the directory.
				fmt.Println("No puede eliminar su propia cuenta mientras está en sesión.")
				continue
			}
			if !s.confirm(fmt.Sprintf("¿Eliminar el usuario '%s'? Esta acción no se puede deshacer.", username)) {
				continue
			}
			if err := s.users.DeleteUser(ctx, username); err != nil {
				fmt.Println("No se pudo eliminar:", err)
				continue
			}
			fmt.Println("Usuario eliminado.")
			s.save(ctx)
		case "5":
			return
		}
	}
}

func (s *session) listUsers(ctx context.Context) {
	entries, err := s.users.ListUsers(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USUARIO\tNOMBRE\tROL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Username, e.User.Name, e.User.Role)
	}
	w.Flush()
}

// --- reports ---

func (s *session) reports(ctx context.Context) {
	for {
		fmt.Println("\n1) Ventas del día  2) Resumen general  3) Productos más vendidos  4) Volver")
		switch s.prompt("> ") {
		case "1":
			s.showTodaysSales(ctx)
		case "2":
			s.showSummaryReport(ctx)
		case "3":
			s.showProductReport(ctx)
		case "4":
			return
		}
	}
}

func (s *session) showTodaysSales(ctx context.Context) {
	today := time.Now().Format("2006-01-02")
	records, err := s.sales.SalesByDate(ctx, today)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("No hay ventas registradas para el día de hoy.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tHORA\tVENDEDOR\tTOTAL")
	for i, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\n", i+1, r.Date.Format("15:04:05"), r.Seller, r.Total)
	}
	w.Flush()
	sum := salesUCPkg.Summarize(records)
	fmt.Printf("Ventas: %d | Monto total: $%.2f | Promedio: $%.2f\n", sum.Count, sum.Total, sum.Average)
}

func (s *session) showSummaryReport(ctx context.Context) {
	sum, err := s.sales.Summary(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	byDay, err := s.sales.AggregateByDay(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Ventas registradas: %d\nMonto total: $%.2f\nPromedio por venta: $%.2f\nDías con ventas: %d\n",
		sum.Count, sum.Total, sum.Average, len(byDay))

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	// Most recent day first, like the historical report.
	for i := 0; i < len(days); i++ {
		for j := i + 1; j < len(days); j++ {
			if days[j] > days[i] {
				days[i], days[j] = days[j], days[i]
			}
		}
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FECHA\tVENTAS\tMONTO")
	for _, day := range days {
		fmt.Fprintf(w, "%s\t%d\t$%.2f\n", day, byDay[day].Count, byDay[day].Total)
	}
	w.Flush()
}

func (s *session) showProductReport(ctx context.Context) {
	byProduct, err := s.sales.AggregateByProduct(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCTO\tCANTIDAD\tMONTO\tVECES")
	for key, agg := range byProduct {
		p, err := s.catalog.GetProduct(ctx, key)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%.1f %s\t$%.2f\t%d\n", p.Name, agg.Quantity, p.Unit, agg.Revenue, agg.Occurrences)
	}
	w.Flush()
}

// --- backup & stats ---

func (s *session) backupMenu(ctx context.Context) {
	fmt.Println("\n1) Exportar respaldo  2) Importar respaldo  3) Volver")
	switch s.prompt("> ") {
	case "1":
		def := fmt.Sprintf("respaldo_tortilleria_%s.json", time.Now().Format("20060102_150405"))
		path := s.promptDefault("Archivo", def)
		if err := s.gateway.Export(ctx, path); err != nil {
			fmt.Println("Error al exportar:", err)
			return
		}
		fmt.Println("Datos exportados en", path)
	case "2":
		path := s.prompt("Archivo de respaldo: ")
		if !s.confirm("¿Importar? Esto sobrescribirá todos los datos actuales.") {
			return
		}
		if err := s.gateway.Import(ctx, path); err != nil {
			fmt.Println("Error al importar:", err)
			return
		}
		fmt.Println("Datos importados desde", path)
	}
}

func (s *session) systemStats(ctx context.Context) {
	stats, err := s.catalog.Stats(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	sum, err := s.sales.Summary(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	admins := 0
	for _, e := range users {
		if e.User.Role == model.RoleAdmin {
			admins++
		}
	}

	fmt.Println("\nINVENTARIO")
	fmt.Printf("  Productos: %d | Agotados: %d | Poco stock: %d | Valor: $%.2f\n",
		stats.TotalProducts, stats.Depleted, stats.LowStock, stats.InventoryValue)
	fmt.Println("USUARIOS")
	fmt.Printf("  Total: %d | Administradores: %d | Empleados: %d\n", len(users), admins, len(users)-admins)
	fmt.Println("VENTAS")
	fmt.Printf("  Registradas: %d | Monto total: $%.2f | Promedio: $%.2f\n", sum.Count, sum.Total, sum.Average)
}

// --- prompt helpers ---

func (s *session) prompt(label string) string {
	fmt.Print(label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *session) promptDefault(label, def string) string {
	v := s.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if v == "" {
		return def
	}
	return v
}

func (s *session) promptFloat(label string) (float64, error) {
	return strconv.ParseFloat(s.prompt(label), 64)
}

func (s *session) promptFloatDefault(label string, def float64) (float64, error) {
	v := s.prompt(fmt.Sprintf("%s [%.2f]: ", label, def))
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func (s *session) promptRole() model.Role {
	if s.prompt("Rol (1=empleado, 2=administrador): ") == "2" {
		return model.RoleAdmin
	}
	return model.RoleEmployee
}

func (s *session) confirm(question string) bool {
	answer := strings.ToLower(s.prompt(question + " (s/n): "))
	return answer == "s" || answer == "si" || answer == "sí"
}

// save flushes after a mutating admin action; errors are shown but the
// in-memory change stands.
func (s *session) save(ctx context.Context) {
	if err := s.gateway.SaveAll(ctx); err != nil {
		fmt.Println("Aviso: no se pudieron guardar los datos:", err)
	}
}
