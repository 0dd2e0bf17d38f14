package services

import (
	"fmt"
	"log"

	"gudang-app/config"
	"gudang-app/models"

	"gopkg.in/gomail.v2"
)

// SendLowStockAlert mengirim email kalau stok sparepart turun di bawah
// minimum setelah approval. Tidak aktif kalau SMTP belum dikonfigurasi,
// dan kegagalan kirim tidak boleh menggagalkan approval-nya.
func SendLowStockAlert(sparepart *models.Sparepart, newStock int) {
	if config.SMTPHost == "" || config.AlertEmail == "" {
		return
	}
	if newStock >= sparepart.MinStock {
		return
	}

	body := fmt.Sprintf(
		"Stok sparepart %s (%s) tersisa %d %s, di bawah minimum %d.\nSegera lakukan pembelian.",
		sparepart.Name, sparepart.Code, newStock, sparepart.Unit, sparepart.MinStock,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPUser)
	m.SetHeader("To", config.AlertEmail)
	m.SetHeader("Subject", "[Gudang] Stok minim: "+sparepart.Code)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)

	go func() {
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Failed to send low stock alert for %s: %v", sparepart.Code, err)
		}
	}()
}
