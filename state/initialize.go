package state

import (
	"time"

	"cardgen/common"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		DefaultLogo: []byte(`<svg viewBox="0 0 420 80" xmlns="http://www.w3.org/2000/svg">
  <path d="
    M20 40 H150
    M270 40 H400

    M210 12
    L238 40
    L210 68
    L182 40
    Z

    M210 24
    L226 40
    L210 56
    L194 40
    Z
  "
  fill="none" stroke="white" stroke-width="4"/>
</svg>`),
		DefaultBackground: []byte(`<svg viewBox="0 0 630 890" xmlns="http://www.w3.org/2000/svg">
  <rect width="630" height="890" fill="#f3e9d2"/>
  <path d="
    M0 120 Q160 60 315 120 T630 100 V0 H0 Z
    M0 470 Q200 420 400 470 T630 450 V330 Q430 390 215 330 T0 360 Z
    M0 890 V780 Q170 830 340 780 T630 800 V890 Z
  "
  fill="#e9dbba" opacity="0.45"/>
  <path d="
    M90 210 q30 -18 60 0 q-30 18 -60 0
    M420 260 q36 -14 72 0 q-36 14 -72 0
    M180 620 q40 -16 80 0 q-40 16 -80 0
    M470 700 q28 -12 56 0 q-28 12 -56 0
  "
  fill="#dfd0a8" opacity="0.5"/>
</svg>`),
		DefaultPlaceholder: map[common.EntityKind][]byte{
			common.EntityKindMonster: []byte(`<svg viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">
  <path d="
    M100 30
    C60 30 40 70 40 110
    C40 150 70 170 100 170
    C130 170 160 150 160 110
    C160 70 140 30 100 30
    Z
    M70 90 A8 8 0 1 1 69.9 90
    M130 90 A8 8 0 1 1 129.9 90
    M70 130 Q100 150 130 130
  "
  fill="none" stroke="#5a4632" stroke-width="5"/>
  <path d="M55 40 L70 60 M145 40 L130 60" stroke="#5a4632" stroke-width="5"/>
</svg>`),
			common.EntityKindItem: []byte(`<svg viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">
  <path d="
    M100 20 L110 120 H90 Z
    M70 120 H130
    M95 120 H105 V160
    Q100 175 95 160
    Z
  "
  fill="none" stroke="#5a4632" stroke-width="5"/>
  <circle cx="100" cy="170" r="8" fill="none" stroke="#5a4632" stroke-width="5"/>
</svg>`),
		},
	}
}
