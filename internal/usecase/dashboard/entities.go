package dashboard

import "time"

const recentLimit = 5

type RecentPrestamoDTO struct {
	ID              uint64    `json:"id"`
	MontoAprobado   string    `json:"monto_aprobado"`
	ClienteNombre   string    `json:"cliente_nombre"`
	Estado          string    `json:"estado"`
	FechaAprobacion time.Time `json:"fecha_aprobacion"`
}

type SummaryDTO struct {
	Clientes            int64               `json:"clientes"`
	ClientesConPrestamo int64               `json:"clientes_con_prestamo"`
	ClientesNuevosMes   int64               `json:"clientes_nuevos_mes"`
	PrestamosActivos    int64               `json:"prestamos_activos"`
	IngresosMensuales   string              `json:"ingresos_mensuales"`
	PrestamosRecientes  []RecentPrestamoDTO `json:"prestamos_recientes"`
}
