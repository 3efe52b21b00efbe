// Package stats contiene los cálculos puros de vistas derivadas: filtros y
// ordenamientos de listados, agrupación de transacciones por fecha, agregados
// por bloque de tiempo para los gráficos y el top de conceptos vendidos.
//
// Todas las funciones operan sobre snapshots de las colecciones y se recalculan
// en cada lectura; a la escala de datos de esta app no hace falta cachear.
package stats

import (
	"fmt"
	"time"
)

// Nombres en español tal como los muestra la UI (es-AR).
var (
	weekdayNames = [...]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
	weekdayShort = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
	monthNames   = [...]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}
	monthShort   = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
)

// SameDay compara igualdad de día calendario (no ventana de 24 horas).
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateLabel devuelve la etiqueta de grupo para una fecha: "Hoy", "Ayer" o el
// día escrito en español, ej. "Lunes, 3 de Marzo".
func DateLabel(date, now time.Time) string {
	if SameDay(date, now) {
		return "Hoy"
	}
	if SameDay(date, now.AddDate(0, 0, -1)) {
		return "Ayer"
	}
	return fmt.Sprintf("%s, %d de %s", weekdayNames[date.Weekday()], date.Day(), monthNames[date.Month()-1])
}

// WeekdayShort devuelve la abreviatura española del día ("Dom".."Sáb").
func WeekdayShort(t time.Time) string {
	return weekdayShort[t.Weekday()]
}

// MonthLabel devuelve una etiqueta legible del mes, ej. "Febrero 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}
