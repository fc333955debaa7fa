package core

import "strings"

// Intent es el resultado de clasificar un mensaje: si amerita reinyectar
// contexto fresco y, de mencionar un distrito conocido, cuál.
type Intent struct {
	NeedsContext bool
	Distrito     string
}

// Classifier decide si un mensaje necesita datos de fundamento frescos. Es
// una interfaz para poder reemplazar la heurística de palabras clave por un
// modelo de intención sin tocar el flujo del chat.
type Classifier interface {
	Classify(message string) Intent
}

// distritosSanRafael es el diccionario de distritos reconocidos en los
// mensajes. Un distrito no listado se ignora en silencio y el contexto se
// arma sin acotar.
var distritosSanRafael = []string{
	"Centro",
	"Villa 25 de Mayo",
	"El Nihuil",
	"Valle Grande",
	"Cañón del Atuel",
	"Salto de las Rosas",
	"Rama Caída",
	"Cuadro Benegas",
	"Goudge",
	"Las Paredes",
	"Monte Comán",
	"Real del Padre",
	"Villa Atuel",
	"Punta del Agua",
	"El Sosneado",
	"Jaime Prats",
	"La Llave",
	"Cañada Seca",
	"Las Malvinas",
}

var palabrasDisparadoras = []string{
	"hotel", "alojamiento", "hospedaje", "cabaña", "camping",
	"restaurante", "comer", "comida", "gastronomía", "gastronomia",
	"actividad", "excursión", "excursion", "aventura", "rafting",
	"bodega", "vino", "atractivo", "lugar", "visitar", "conocer",
	"recomend", "dónde", "donde", "qué hacer", "que hacer",
	"empresa", "precio", "horario",
}

type KeywordClassifier struct {
	disparadoras []string
	distritos    []string
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		disparadoras: palabrasDisparadoras,
		distritos:    distritosSanRafael,
	}
}

func (c *KeywordClassifier) Classify(message string) Intent {
	lower := strings.ToLower(message)
	intent := Intent{}

	for _, d := range c.distritos {
		if strings.Contains(lower, strings.ToLower(d)) {
			intent.Distrito = d
			intent.NeedsContext = true
			break
		}
	}
	if !intent.NeedsContext {
		for _, palabra := range c.disparadoras {
			if strings.Contains(lower, palabra) {
				intent.NeedsContext = true
				break
			}
		}
	}
	return intent
}
